package processbatch

import (
	"context"
	"errors"
	"testing"

	"onboarding-workers/internal/common/logger"
	"onboarding-workers/internal/models"
	compileprofile "onboarding-workers/internal/workers/onboarding/compile-profile"
	provisionaccount "onboarding-workers/internal/workers/onboarding/provision-account"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubExtractor returns canned fields per filename.
type stubExtractor map[string]models.ExtractedFields

func (s stubExtractor) ExtractRaw(_ context.Context, doc models.RawDocumentInput, _ models.DocumentKind) models.ExtractedFields {
	fields, ok := s[doc.Filename]
	if !ok {
		return models.ExtractedFields{}
	}
	return fields.Clone()
}

type panickingExtractor struct{}

func (panickingExtractor) ExtractRaw(context.Context, models.RawDocumentInput, models.DocumentKind) models.ExtractedFields {
	panic("extractor exploded")
}

type flakyProvisioner struct {
	*provisionaccount.Provisioner
	createErr      error
	failActivation bool
}

func (f *flakyProvisioner) CreateAccount(ctx context.Context, customerID string, accountType models.AccountType) (*models.BankAccount, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.Provisioner.CreateAccount(ctx, customerID, accountType)
}

func (f *flakyProvisioner) ActivateAccount(ctx context.Context, accountNumber string) bool {
	if f.failActivation {
		return false
	}
	return f.Provisioner.ActivateAccount(ctx, accountNumber)
}

type MockIndexer struct {
	mock.Mock
}

func (m *MockIndexer) IndexDocuments(ctx context.Context, customerID string, docs []models.ProcessedDocument) (int, error) {
	args := m.Called(ctx, customerID, docs)
	return args.Int(0), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyOnboarded(ctx context.Context, profile models.CustomerProfile, account models.BankAccount) error {
	args := m.Called(ctx, profile, account)
	return args.Error(0)
}

func licenseFields() models.ExtractedFields {
	return models.ExtractedFields{
		"license_number": "D1234567", "first_name": "Jane", "last_name": "Doe",
		"date_of_birth": "1990-01-15", "address": "9 Old Rd",
	}
}

func billFields() models.ExtractedFields {
	return models.ExtractedFields{"street": "1 Main St", "city": "Springfield", "state": "IL", "zip_code": "62701"}
}

func fullExtractor() stubExtractor {
	return stubExtractor{
		"drivers_license.jpg":   licenseFields(),
		"ssn_card.pdf":          {"social_security_number": "123-45-6789"},
		"utility_bill.pdf":      billFields(),
		"employment_letter.pdf": {"employer": "Acme", "position": "Engineer", "salary": "85000"},
	}
}

func batch() []models.RawDocumentInput {
	return []models.RawDocumentInput{
		{Filename: "drivers_license.jpg", Content: []byte("dl")},
		{Filename: "ssn_card.pdf", Content: []byte("ssn")},
		{Filename: "utility_bill.pdf", Content: []byte("bill")},
		{Filename: "employment_letter.pdf", Content: []byte("job")},
	}
}

type fixture struct {
	orchestrator *Orchestrator
	store        *provisionaccount.MemoryStore
	provisioner  *flakyProvisioner
}

func newFixture(t *testing.T, extractor FieldExtractor, opts ...Option) *fixture {
	log := logger.NewTestLogger(t)
	store := provisionaccount.NewMemoryStore()
	prov := &flakyProvisioner{Provisioner: provisionaccount.NewProvisioner(store, 3, log)}
	compiler := compileprofile.NewCompiler(compileprofile.ContactPlaceholderPolicy{
		Enabled: true, Email: "customer@example.com", Phone: "555-0123",
	})
	return &fixture{
		orchestrator: NewOrchestrator(extractor, compiler, prov, log, opts...),
		store:        store,
		provisioner:  prov,
	}
}

func statuses(docs []models.ProcessedDocument) []models.VerificationStatus {
	out := make([]models.VerificationStatus, len(docs))
	for i, d := range docs {
		out[i] = d.VerificationStatus
	}
	return out
}

func TestProcessBatch_AllDocumentsValid_Completed(t *testing.T) {
	f := newFixture(t, fullExtractor())

	res := f.orchestrator.ProcessBatch(context.Background(), batch(), "")

	require.Equal(t, models.ProcessingCompleted, res.Status)
	assert.Equal(t, models.MessageCompleted, res.Message)
	assert.Empty(t, res.Error)

	require.NotNil(t, res.BankAccount)
	assert.Equal(t, models.AccountStatusActive, res.BankAccount.Status)
	assert.Equal(t, models.AccountChecking, res.BankAccount.AccountType)
	assert.Equal(t, 0.0, res.BankAccount.Balance)

	require.NotNil(t, res.CustomerProfile)
	assert.Equal(t, res.CustomerProfile.ID, res.BankAccount.CustomerID)
	assert.Equal(t, "1 Main St", res.CustomerProfile.Address.Street)
	assert.Equal(t, 85000.0, res.CustomerProfile.EmploymentInfo.AnnualIncome)

	require.Len(t, res.Documents, 4)
	assert.Equal(t, []models.DocumentKind{
		models.DocumentDriversLicense, models.DocumentSocialSecurityCard,
		models.DocumentProofOfAddress, models.DocumentEmploymentVerification,
	}, []models.DocumentKind{res.Documents[0].Kind, res.Documents[1].Kind, res.Documents[2].Kind, res.Documents[3].Kind})
	for _, s := range statuses(res.Documents) {
		assert.Equal(t, models.VerificationVerified, s)
	}

	stored, err := f.store.Get(context.Background(), res.BankAccount.AccountNumber)
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusActive, stored.Status)
}

func TestProcessBatch_MissingZip_ValidationFailed(t *testing.T) {
	ex := fullExtractor()
	delete(ex["utility_bill.pdf"], "zip_code")
	f := newFixture(t, ex)

	res := f.orchestrator.ProcessBatch(context.Background(), batch(), models.AccountSavings)

	assert.Equal(t, models.ProcessingValidationFailed, res.Status)
	assert.Equal(t, models.MessageValidationFailed, res.Message)
	assert.Nil(t, res.BankAccount)
	require.NotNil(t, res.CustomerProfile)
	assert.Empty(t, res.CustomerProfile.Address.ZipCode)
	assert.Equal(t, models.VerificationRejected, res.Documents[2].VerificationStatus)
	assert.Equal(t, models.VerificationVerified, res.Documents[0].VerificationStatus)

	accounts, err := f.store.ListByCustomer(context.Background(), res.CustomerProfile.ID)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestProcessBatch_EmptyBatch_Error(t *testing.T) {
	f := newFixture(t, fullExtractor())

	res := f.orchestrator.ProcessBatch(context.Background(), nil, "")

	assert.Equal(t, models.ProcessingError, res.Status)
	assert.Equal(t, "Document scanning failed", res.Message)
	assert.Equal(t, models.ErrorNoDocuments, res.Error)
	assert.Nil(t, res.CustomerProfile)
	assert.Nil(t, res.BankAccount)
	assert.Empty(t, res.Documents)
}

func TestProcessBatch_RejectedDocument_PendingVerification(t *testing.T) {
	ex := fullExtractor()
	ex["ssn_card.pdf"] = models.ExtractedFields{"social_security_number": "12-345-6789"}
	f := newFixture(t, ex)

	res := f.orchestrator.ProcessBatch(context.Background(), batch(), "")

	assert.Equal(t, models.ProcessingPendingVerification, res.Status)
	assert.Equal(t, models.MessagePendingVerification, res.Message)
	require.NotNil(t, res.BankAccount)
	assert.Equal(t, models.AccountStatusPending, res.BankAccount.Status)
	assert.Equal(t, models.VerificationRejected, res.Documents[1].VerificationStatus)
}

func TestProcessBatch_ActivationFailure_PendingVerification(t *testing.T) {
	f := newFixture(t, fullExtractor())
	f.provisioner.failActivation = true

	res := f.orchestrator.ProcessBatch(context.Background(), batch(), "")

	assert.Equal(t, models.ProcessingPendingVerification, res.Status)
	require.NotNil(t, res.BankAccount)
	assert.Equal(t, models.AccountStatusPending, res.BankAccount.Status)
}

func TestProcessBatch_ProvisioningFailure_Error(t *testing.T) {
	f := newFixture(t, fullExtractor())
	f.provisioner.createErr = errors.New("store unreachable")

	res := f.orchestrator.ProcessBatch(context.Background(), batch(), "")

	assert.Equal(t, models.ProcessingError, res.Status)
	assert.Equal(t, models.MessageProcessingError, res.Message)
	assert.Equal(t, "store unreachable", res.Error)
	assert.NotNil(t, res.CustomerProfile)
	assert.Len(t, res.Documents, 4)
	assert.Nil(t, res.BankAccount)
}

func TestProcessBatch_Panic_Error(t *testing.T) {
	f := newFixture(t, panickingExtractor{})

	var res *models.ProcessingResult
	require.NotPanics(t, func() {
		res = f.orchestrator.ProcessBatch(context.Background(), batch(), "")
	})

	assert.Equal(t, models.ProcessingError, res.Status)
	assert.Equal(t, "extractor exploded", res.Error)
	assert.Nil(t, res.CustomerProfile)
}

func TestProcessBatch_IndexAndNotify(t *testing.T) {
	indexer := new(MockIndexer)
	notifier := new(MockNotifier)

	indexer.On("IndexDocuments", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(0, errors.New("cluster red"))
	notifier.On("NotifyOnboarded", mock.Anything, mock.Anything, mock.MatchedBy(func(a models.BankAccount) bool {
		return a.Status == models.AccountStatusActive
	})).Return(nil)

	f := newFixture(t, fullExtractor(), WithIndexer(indexer), WithNotifier(notifier))
	res := f.orchestrator.ProcessBatch(context.Background(), batch(), "")

	assert.Equal(t, models.ProcessingCompleted, res.Status, "indexing failure does not affect the outcome")
	indexer.AssertNumberOfCalls(t, "IndexDocuments", 1)
	notifier.AssertExpectations(t)
}

func TestProcessBatch_ValidationFailedSkipsNotification(t *testing.T) {
	indexer := new(MockIndexer)
	notifier := new(MockNotifier)
	indexer.On("IndexDocuments", mock.Anything, mock.Anything, mock.Anything).Return(4, nil)

	f := newFixture(t, stubExtractor{}, WithIndexer(indexer), WithNotifier(notifier))
	res := f.orchestrator.ProcessBatch(context.Background(), batch(), "")

	assert.Equal(t, models.ProcessingValidationFailed, res.Status)
	for _, s := range statuses(res.Documents) {
		assert.Equal(t, models.VerificationRejected, s)
	}
	indexer.AssertExpectations(t)
	notifier.AssertNotCalled(t, "NotifyOnboarded", mock.Anything, mock.Anything, mock.Anything)
}

func TestScanOnly_Deterministic(t *testing.T) {
	f := newFixture(t, fullExtractor())
	ctx := context.Background()

	first := f.orchestrator.ScanOnly(ctx, batch())
	second := f.orchestrator.ScanOnly(ctx, batch())

	require.Len(t, first, 4)
	require.Len(t, second, 4)
	for i := range first {
		assert.Equal(t, first[i].Kind, second[i].Kind)
		assert.Equal(t, first[i].Fields, second[i].Fields)
		assert.Equal(t, first[i].Filename, second[i].Filename)
		assert.Equal(t, models.VerificationPending, first[i].VerificationStatus)
		assert.NotEqual(t, first[i].ID, second[i].ID)
	}
}

func TestScanOnly_UnknownDocumentGetsEmptyFields(t *testing.T) {
	f := newFixture(t, stubExtractor{})

	docs := f.orchestrator.ScanOnly(context.Background(), []models.RawDocumentInput{{Filename: "mystery.bin"}})

	require.Len(t, docs, 1)
	assert.Equal(t, models.DocumentDriversLicense, docs[0].Kind)
	assert.NotNil(t, docs[0].Fields)
	assert.Empty(t, docs[0].Fields)
}
