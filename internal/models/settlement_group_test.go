package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SettlementGroupTestSuite is the test suite for the SettlementGroup model
type SettlementGroupTestSuite struct {
	suite.Suite
	db *gorm.DB
}

// SetupTest runs before each test
func (s *SettlementGroupTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&SettlementGroup{}, &SettlementAllocation{})
	require.NoError(s.T(), err)

	s.db = db
}

// TearDownTest runs after each test
func (s *SettlementGroupTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// TestSettlementGroupTestSuite runs the test suite
func TestSettlementGroupTestSuite(t *testing.T) {
	suite.Run(t, new(SettlementGroupTestSuite))
}

func (s *SettlementGroupTestSuite) validGroup() *SettlementGroup {
	return &SettlementGroup{
		CompanyID:            uuid.New(),
		BankStatementID:      uuid.New(),
		SettlementDate:       time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		TotalStatementAmount: decimal.NewFromInt(1000),
		TotalAllocatedAmount: decimal.NewFromInt(950),
		Difference:           decimal.NewFromInt(50),
		Status:               SettlementStatusReconciled,
	}
}

// TestSettlementGroup_BeforeCreate_GeneratesID tests ID generation
func (s *SettlementGroupTestSuite) TestSettlementGroup_BeforeCreate_GeneratesID() {
	group := s.validGroup()

	err := s.db.Create(group).Error
	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), uuid.Nil, group.ID)
}

// TestSettlementGroup_BeforeCreate_AssignsSettlementNumber tests that the
// display identifier is assigned at persistence time
func (s *SettlementGroupTestSuite) TestSettlementGroup_BeforeCreate_AssignsSettlementNumber() {
	group := s.validGroup()

	err := s.db.Create(group).Error
	require.NoError(s.T(), err)

	assert.True(s.T(), strings.HasPrefix(group.SettlementNumber, "SETT-20260214-"))
	assert.Len(s.T(), group.SettlementNumber, len("SETT-20260214-")+6)
}

// TestSettlementGroup_BeforeCreate_KeepsExistingSettlementNumber tests that a
// pre-assigned number is not overwritten
func (s *SettlementGroupTestSuite) TestSettlementGroup_BeforeCreate_KeepsExistingSettlementNumber() {
	group := s.validGroup()
	group.SettlementNumber = "SETT-20260214-FIXED1"

	err := s.db.Create(group).Error
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "SETT-20260214-FIXED1", group.SettlementNumber)
}

// TestSettlementGroup_Validate_RejectsInconsistentDifference tests the
// difference invariant
func (s *SettlementGroupTestSuite) TestSettlementGroup_Validate_RejectsInconsistentDifference() {
	group := s.validGroup()
	group.Difference = decimal.NewFromInt(49)

	err := s.db.Create(group).Error
	assert.ErrorIs(s.T(), err, ErrInvalidSettlementTotals)
}

// TestSettlementGroup_Validate_RejectsInvalidStatus tests status validation
func (s *SettlementGroupTestSuite) TestSettlementGroup_Validate_RejectsInvalidStatus() {
	group := s.validGroup()
	group.Status = "PENDING"

	err := s.db.Create(group).Error
	assert.ErrorIs(s.T(), err, ErrInvalidSettlementStatus)
}

// TestSettlementGroup_IsDeleted tests the soft-delete marker helper
func (s *SettlementGroupTestSuite) TestSettlementGroup_IsDeleted() {
	group := s.validGroup()
	assert.False(s.T(), group.IsDeleted())

	now := time.Now()
	group.DeletedAt = &now
	assert.True(s.T(), group.IsDeleted())
}

// TestGenerateSettlementNumber_Deterministic tests that the number is derived
// from the date and ID only
func (s *SettlementGroupTestSuite) TestGenerateSettlementNumber_Deterministic() {
	id := uuid.MustParse("9f3a1c40-0000-0000-0000-000000000000")
	date := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)

	first := GenerateSettlementNumber(date, id)
	second := GenerateSettlementNumber(date, id)

	assert.Equal(s.T(), "SETT-20260214-9F3A1C", first)
	assert.Equal(s.T(), first, second)
}

// TestSettlementAllocation_BeforeCreate tests allocation hook and validation
func (s *SettlementGroupTestSuite) TestSettlementAllocation_BeforeCreate() {
	allocation := &SettlementAllocation{
		SettlementGroupID: uuid.New(),
		AggregateID:       uuid.New(),
		AllocatedAmount:   decimal.NewFromInt(250),
		OriginalAmount:    decimal.NewFromInt(250),
	}

	err := s.db.Create(allocation).Error
	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), uuid.Nil, allocation.ID)
	assert.False(s.T(), allocation.CreatedAt.IsZero())
}

// TestSettlementAllocation_Validate_RequiresIDs tests required references
func (s *SettlementGroupTestSuite) TestSettlementAllocation_Validate_RequiresIDs() {
	allocation := &SettlementAllocation{
		AggregateID:     uuid.New(),
		AllocatedAmount: decimal.NewFromInt(250),
		OriginalAmount:  decimal.NewFromInt(250),
	}

	err := s.db.Create(allocation).Error
	assert.Error(s.T(), err)
}
