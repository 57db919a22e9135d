// internal/workers/onboarding/index-documents/indexer.go
package indexdocuments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	apperrors "onboarding-workers/internal/common/errors"
	"onboarding-workers/internal/common/logger"
	"onboarding-workers/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
)

// Indexer writes processed documents into the search index, one document
// per request keyed by document id.
type Indexer struct {
	client *elasticsearch.Client
	index  string
	logger logger.Logger
}

func NewIndexer(client *elasticsearch.Client, index string, log logger.Logger) *Indexer {
	return &Indexer{client: client, index: index, logger: log}
}

// IndexDocuments stops at the first failure and reports how many were written.
func (i *Indexer) IndexDocuments(ctx context.Context, customerID string, docs []models.ProcessedDocument) (int, error) {
	now := time.Now().UTC()
	for n, doc := range docs {
		if err := i.indexOne(ctx, project(customerID, doc, now)); err != nil {
			return n, apperrors.NewDocumentIndexingFailedError(i.index, err)
		}
	}
	return len(docs), nil
}

func (i *Indexer) indexOne(ctx context.Context, doc IndexedDocument) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", doc.DocumentID, err)
	}

	res, err := i.client.Index(
		i.index,
		bytes.NewReader(body),
		i.client.Index.WithContext(ctx),
		i.client.Index.WithDocumentID(doc.DocumentID),
	)
	if err != nil {
		return fmt.Errorf("index document %s: %w", doc.DocumentID, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("index document %s: %s: %s", doc.DocumentID, res.Status(), msg)
	}

	i.logger.Debug("document indexed", map[string]interface{}{
		"documentId": doc.DocumentID,
		"index":      i.index,
	})
	return nil
}

func project(customerID string, doc models.ProcessedDocument, indexedAt time.Time) IndexedDocument {
	names := make([]string, 0, len(doc.Fields))
	for k := range doc.Fields {
		names = append(names, k)
	}
	sort.Strings(names)

	return IndexedDocument{
		DocumentID:         doc.ID,
		CustomerID:         customerID,
		Kind:               doc.Kind,
		Filename:           doc.Filename,
		VerificationStatus: doc.VerificationStatus,
		FieldNames:         names,
		UploadedAt:         doc.UploadedAt,
		IndexedAt:          indexedAt,
	}
}
