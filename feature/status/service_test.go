package status

import (
	"context"
	"path/filepath"
	"testing"

	"fridge-manager/core/imaging"
	"fridge-manager/core/pantry"
	"fridge-manager/core/storage/mocks"
	"fridge-manager/core/vision"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type stubDetector struct {
	err error
}

func (d *stubDetector) Detect(ctx context.Context, frame *imaging.Frame) ([]vision.Detection, error) {
	return nil, d.err
}

func (d *stubDetector) Health(ctx context.Context) error {
	return d.err
}

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func newStore(t *testing.T) *pantry.Store {
	t.Helper()
	persister := pantry.NewFilePersister(filepath.Join(t.TempDir(), "pantry.json"))
	store, err := pantry.Open(context.Background(), persister, zap.NewNop())
	require.NoError(t, err)
	return store
}

func TestService_Check_AllHealthy(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "fridge").Return(true, nil)

	db, dbMock := setupMockDB(t)
	dbMock.ExpectQuery("SELECT count\\(\\*\\) FROM `scan_records`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))

	svc := NewService(&stubDetector{}, mockClient, "fridge", db, newStore(t), true, zap.NewNop())
	report := svc.Check(context.Background())

	assert.True(t, report.Healthy)
	assert.False(t, report.CheckedAt.IsZero())
	assert.Equal(t, "ok", report.Components["vision"].Status)
	assert.Equal(t, "ok", report.Components["storage"].Status)
	assert.Equal(t, "ok", report.Components["database"].Status)
	assert.Equal(t, "3 scan batches recorded", report.Components["database"].Detail)
	assert.Equal(t, "ok", report.Components["catalog"].Status)
	assert.Equal(t, "ok", report.Components["pantry"].Status)
	assert.Equal(t, "0 items, 0 units", report.Components["pantry"].Detail)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestService_Check_VisionDown(t *testing.T) {
	svc := NewService(&stubDetector{err: vision.ErrInference}, nil, "", nil, newStore(t), false, zap.NewNop())
	report := svc.Check(context.Background())

	assert.False(t, report.Healthy)
	assert.Equal(t, "error", report.Components["vision"].Status)
	assert.Equal(t, "inference failed", report.Components["vision"].Detail)
}

func TestService_Check_DisabledBackends(t *testing.T) {
	svc := NewService(&stubDetector{}, nil, "", nil, newStore(t), false, zap.NewNop())
	report := svc.Check(context.Background())

	assert.True(t, report.Healthy, "disabled backends must not degrade the service")
	assert.Equal(t, "disabled", report.Components["storage"].Status)
	assert.Equal(t, "disabled", report.Components["database"].Status)
	assert.Equal(t, "disabled", report.Components["catalog"].Status)
}

func TestService_Check_MissingBucket(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "fridge").Return(false, nil)

	svc := NewService(&stubDetector{}, mockClient, "fridge", nil, newStore(t), false, zap.NewNop())
	report := svc.Check(context.Background())

	assert.False(t, report.Healthy)
	assert.Equal(t, "error", report.Components["storage"].Status)
	assert.Contains(t, report.Components["storage"].Detail, "fridge")
}

func TestService_Check_DatabaseFailure(t *testing.T) {
	db, dbMock := setupMockDB(t)
	dbMock.ExpectQuery("SELECT count\\(\\*\\) FROM `scan_records`").
		WillReturnError(assert.AnError)

	svc := NewService(&stubDetector{}, nil, "", db, newStore(t), false, zap.NewNop())
	report := svc.Check(context.Background())

	assert.False(t, report.Healthy)
	assert.Equal(t, "error", report.Components["database"].Status)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
