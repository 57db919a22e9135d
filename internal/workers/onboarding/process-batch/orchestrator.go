// internal/workers/onboarding/process-batch/orchestrator.go
package processbatch

import (
	"context"
	"fmt"
	"time"

	"onboarding-workers/internal/common/logger"
	"onboarding-workers/internal/common/metrics"
	"onboarding-workers/internal/models"
	classifydocument "onboarding-workers/internal/workers/onboarding/classify-document"
	compileprofile "onboarding-workers/internal/workers/onboarding/compile-profile"
	validatedocument "onboarding-workers/internal/workers/onboarding/validate-document"
	validateprofile "onboarding-workers/internal/workers/onboarding/validate-profile"

	"github.com/google/uuid"
)

type FieldExtractor interface {
	ExtractRaw(ctx context.Context, doc models.RawDocumentInput, kind models.DocumentKind) models.ExtractedFields
}

type AccountProvisioner interface {
	CreateAccount(ctx context.Context, customerID string, accountType models.AccountType) (*models.BankAccount, error)
	ActivateAccount(ctx context.Context, accountNumber string) bool
	GetAccount(ctx context.Context, accountNumber string) (*models.BankAccount, error)
}

type DocumentIndexer interface {
	IndexDocuments(ctx context.Context, customerID string, docs []models.ProcessedDocument) (int, error)
}

type CustomerNotifier interface {
	NotifyOnboarded(ctx context.Context, profile models.CustomerProfile, account models.BankAccount) error
}

// Orchestrator runs one customer batch through scanning, document
// validation, profile compilation, profile validation and provisioning.
// It is the error boundary for the pipeline: every outcome is a
// ProcessingResult.
type Orchestrator struct {
	extractor   FieldExtractor
	compiler    *compileprofile.Compiler
	provisioner AccountProvisioner
	indexer     DocumentIndexer
	notifier    CustomerNotifier
	logger      logger.Logger
	now         func() time.Time
}

type Option func(*Orchestrator)

// WithIndexer indexes processed documents once a customer id exists.
func WithIndexer(indexer DocumentIndexer) Option {
	return func(o *Orchestrator) { o.indexer = indexer }
}

// WithNotifier tells the customer about a newly created account.
func WithNotifier(notifier CustomerNotifier) Option {
	return func(o *Orchestrator) { o.notifier = notifier }
}

func NewOrchestrator(extractor FieldExtractor, compiler *compileprofile.Compiler, provisioner AccountProvisioner, log logger.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		extractor:   extractor,
		compiler:    compiler,
		provisioner: provisioner,
		logger:      log,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ScanOnly classifies and extracts every file in order. Each call assigns
// fresh document ids.
func (o *Orchestrator) ScanOnly(ctx context.Context, files []models.RawDocumentInput) []models.ProcessedDocument {
	docs := make([]models.ProcessedDocument, 0, len(files))
	for _, file := range files {
		kind := classifydocument.Classify(file.Filename)
		fields := o.extractor.ExtractRaw(ctx, file, kind)
		if fields == nil {
			fields = models.ExtractedFields{}
		}

		docs = append(docs, models.ProcessedDocument{
			ID:                 uuid.NewString(),
			Kind:               kind,
			Filename:           file.Filename,
			Fields:             fields,
			VerificationStatus: models.VerificationPending,
			UploadedAt:         o.now(),
		})
	}
	return docs
}

// run holds whatever a batch has computed so far.
type run struct {
	docs    []models.ProcessedDocument
	profile *models.CustomerProfile
	account *models.BankAccount
}

func (r *run) result(status models.ProcessingStatus, message string) *models.ProcessingResult {
	return &models.ProcessingResult{
		Status:          status,
		Message:         message,
		CustomerProfile: r.profile,
		BankAccount:     r.account,
		Documents:       r.docs,
	}
}

// ProcessBatch onboards one customer from files. accountType may be empty
// for a checking account.
func (o *Orchestrator) ProcessBatch(ctx context.Context, files []models.RawDocumentInput, accountType models.AccountType) (result *models.ProcessingResult) {
	r := &run{}

	defer func() {
		if rec := recover(); rec != nil {
			o.logger.Error("onboarding run panicked", map[string]interface{}{"panic": rec})
			result = r.result(models.ProcessingError, models.MessageProcessingError)
			result.Error = fmt.Sprint(rec)
		}
		metrics.OnboardingBatches.WithLabelValues(string(result.Status)).Inc()
	}()

	done := stage("scanning")
	r.docs = o.ScanOnly(ctx, files)
	done()
	if len(r.docs) == 0 {
		res := r.result(models.ProcessingError, models.MessageScanningFailed)
		res.Documents = nil
		res.Error = models.ErrorNoDocuments
		return res
	}

	done = stage("validating_documents")
	for i := range r.docs {
		doc := &r.docs[i]
		if !validatedocument.Resolve(doc) {
			o.logger.Info("document rejected", map[string]interface{}{
				"documentId":   doc.ID,
				"documentKind": doc.Kind,
				"missing":      validatedocument.MissingFields(*doc),
			})
		}
		metrics.OnboardingDocuments.WithLabelValues(string(doc.Kind), string(doc.VerificationStatus)).Inc()
	}
	done()

	done = stage("compiling")
	profile := o.compiler.Compile(r.docs)
	r.profile = &profile
	r.docs = profile.Documents
	done()

	done = stage("validating_profile")
	valid, reasons := validateprofile.ValidateProfile(profile)
	done()
	if !valid {
		o.logger.Info("customer profile failed validation", map[string]interface{}{
			"customerId": profile.ID,
			"fields":     validateprofile.Fields(reasons),
		})
		o.index(ctx, r)
		return r.result(models.ProcessingValidationFailed, models.MessageValidationFailed)
	}

	done = stage("creating_account")
	account, err := o.provisioner.CreateAccount(ctx, profile.ID, accountType)
	done()
	if err != nil {
		o.logger.Error("account provisioning failed", map[string]interface{}{
			"customerId": profile.ID,
			"error":      err,
		})
		res := r.result(models.ProcessingError, models.MessageProcessingError)
		res.Error = err.Error()
		return res
	}
	r.account = account
	o.index(ctx, r)

	if !profile.AllVerified() {
		o.notify(ctx, r)
		return r.result(models.ProcessingPendingVerification, models.MessagePendingVerification)
	}

	done = stage("activating")
	activated := o.provisioner.ActivateAccount(ctx, account.AccountNumber)
	done()
	if !activated {
		o.notify(ctx, r)
		return r.result(models.ProcessingPendingVerification, models.MessagePendingVerification)
	}

	r.account = o.refresh(ctx, *account)
	o.notify(ctx, r)
	return r.result(models.ProcessingCompleted, models.MessageCompleted)
}

// refresh reads the activated account back, falling back to a local update.
func (o *Orchestrator) refresh(ctx context.Context, account models.BankAccount) *models.BankAccount {
	if stored, err := o.provisioner.GetAccount(ctx, account.AccountNumber); err == nil {
		return stored
	}
	account.Status = models.AccountStatusActive
	account.LastModified = o.now()
	return &account
}

func (o *Orchestrator) index(ctx context.Context, r *run) {
	if o.indexer == nil {
		return
	}
	if _, err := o.indexer.IndexDocuments(ctx, r.profile.ID, r.docs); err != nil {
		o.logger.Warn("document indexing failed", map[string]interface{}{
			"customerId": r.profile.ID,
			"error":      err,
		})
	}
}

func (o *Orchestrator) notify(ctx context.Context, r *run) {
	if o.notifier == nil {
		return
	}
	if err := o.notifier.NotifyOnboarded(ctx, *r.profile, *r.account); err != nil {
		o.logger.Warn("customer notification failed", map[string]interface{}{
			"customerId": r.profile.ID,
			"error":      err,
		})
	}
}

func stage(name string) func() {
	start := time.Now()
	return func() {
		metrics.OnboardingStageDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}
}
