package repositories

import (
	"testing"
	"time"

	"backoffice-recon/internal/database"
	"backoffice-recon/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BankStatementRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo BankStatementRepositoryInterface
}

func (s *BankStatementRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewBankStatementRepository(s.db.DB)
}

func (s *BankStatementRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestBankStatementRepositorySuite(t *testing.T) {
	suite.Run(t, new(BankStatementRepositorySuite))
}

func (s *BankStatementRepositorySuite) TestGetByID() {
	statement := database.CreateTestStatement(s.T(), s.db, "1000000", time.Now())

	found, err := s.repo.GetByID(statement.ID)
	s.NoError(err)
	s.Equal(statement.ID, found.ID)
	s.True(statement.Amount.Equal(found.Amount))
	s.False(found.IsReconciled)
}

func (s *BankStatementRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrStatementNotFound)
}

func (s *BankStatementRepositorySuite) TestMarkReconciled() {
	statement := database.CreateTestStatement(s.T(), s.db, "500000", time.Now())

	err := s.repo.MarkReconciled(statement.ID)
	s.NoError(err)

	found, err := s.repo.GetByID(statement.ID)
	s.NoError(err)
	s.True(found.IsReconciled)
}

func (s *BankStatementRepositorySuite) TestMarkReconciled_AlreadyReconciled() {
	statement := database.CreateTestStatement(s.T(), s.db, "500000", time.Now())

	err := s.repo.MarkReconciled(statement.ID)
	s.NoError(err)

	// Second attempt finds no unreconciled row to update
	err = s.repo.MarkReconciled(statement.ID)
	s.ErrorIs(err, ErrStatementAlreadyReconciled)
}

func (s *BankStatementRepositorySuite) TestMarkUnreconciled() {
	statement := database.CreateTestStatement(s.T(), s.db, "500000", time.Now())

	s.NoError(s.repo.MarkReconciled(statement.ID))
	s.NoError(s.repo.MarkUnreconciled(statement.ID))

	found, err := s.repo.GetByID(statement.ID)
	s.NoError(err)
	s.False(found.IsReconciled)
}

func (s *BankStatementRepositorySuite) TestMarkUnreconciled_NotReconciled() {
	statement := database.CreateTestStatement(s.T(), s.db, "500000", time.Now())

	err := s.repo.MarkUnreconciled(statement.ID)
	s.ErrorIs(err, ErrStatementNotReconciled)
}

type AggregateRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo AggregateRepositoryInterface
}

func (s *AggregateRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAggregateRepository(s.db.DB)
}

func (s *AggregateRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestAggregateRepositorySuite(t *testing.T) {
	suite.Run(t, new(AggregateRepositorySuite))
}

func (s *AggregateRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrAggregateNotFound)
}

func (s *AggregateRepositorySuite) TestGetUnreconciled_ExcludesReconciled() {
	a1 := database.CreateTestAggregate(s.T(), s.db, "300000", time.Now())
	database.CreateTestAggregate(s.T(), s.db, "200000", time.Now())

	s.NoError(s.repo.MarkReconciled([]uuid.UUID{a1.ID}))

	aggregates, total, err := s.repo.GetUnreconciled(models.AggregateFilters{}, 0, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(aggregates, 1)
	s.NotEqual(a1.ID, aggregates[0].ID)
}

func (s *AggregateRepositorySuite) TestGetUnreconciled_DateRangeFilter() {
	now := time.Now()
	database.CreateTestAggregate(s.T(), s.db, "100000", now.AddDate(0, 0, -60))
	inWindow := database.CreateTestAggregate(s.T(), s.db, "200000", now.AddDate(0, 0, -5))

	start := now.AddDate(0, 0, -30)
	aggregates, total, err := s.repo.GetUnreconciled(models.AggregateFilters{StartDate: &start}, 0, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(aggregates, 1)
	s.Equal(inWindow.ID, aggregates[0].ID)
}

func (s *AggregateRepositorySuite) TestGetUnreconciled_Pagination() {
	for i := 0; i < 5; i++ {
		database.CreateTestAggregate(s.T(), s.db, "100000", time.Now())
	}

	aggregates, total, err := s.repo.GetUnreconciled(models.AggregateFilters{}, 0, 2)
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Len(aggregates, 2)

	aggregates, _, err = s.repo.GetUnreconciled(models.AggregateFilters{}, 4, 2)
	s.NoError(err)
	s.Len(aggregates, 1)
}

func (s *AggregateRepositorySuite) TestMarkReconciled_PartialConflict() {
	a1 := database.CreateTestAggregate(s.T(), s.db, "100000", time.Now())
	a2 := database.CreateTestAggregate(s.T(), s.db, "200000", time.Now())

	s.NoError(s.repo.MarkReconciled([]uuid.UUID{a1.ID}))

	// a1 is already claimed, so the batch update covers fewer rows than requested
	err := s.repo.MarkReconciled([]uuid.UUID{a1.ID, a2.ID})
	s.ErrorIs(err, ErrAggregateAlreadyReconciled)
}

func (s *AggregateRepositorySuite) TestMarkReconciled_EmptyIDs() {
	s.NoError(s.repo.MarkReconciled(nil))
}

func (s *AggregateRepositorySuite) TestMarkUnreconciled() {
	a1 := database.CreateTestAggregate(s.T(), s.db, "100000", time.Now())

	s.NoError(s.repo.MarkReconciled([]uuid.UUID{a1.ID}))
	s.NoError(s.repo.MarkUnreconciled([]uuid.UUID{a1.ID}))

	found, err := s.repo.GetByID(a1.ID)
	s.NoError(err)
	s.False(found.IsReconciled)
}
