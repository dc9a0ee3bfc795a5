package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Bavikaran/Authentication-System-Backend/domain"
)

// AccountRepositoryImpl implements domain.AccountRepository using GORM
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// DBAccount represents the database model for Account (with GORM tags)
type DBAccount struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `gorm:"column:password;not null"`
	Name         string    `gorm:"size:255;not null"`
	Role         string    `gorm:"index;size:32;not null"`
	Verified     bool      `gorm:"index"`
	LastLogin    time.Time
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "accounts"
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Create implements domain.AccountRepository. A duplicate email maps to
// domain.ErrEmailTaken, relying on the unique index rather than a
// read-then-write race.
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	dbAccount := r.domainToDB(account)
	if err := r.db.WithContext(ctx).Create(dbAccount).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return err
	}
	account.ID = dbAccount.ID
	account.CreatedAt = dbAccount.CreatedAt
	account.UpdatedAt = dbAccount.UpdatedAt
	return nil
}

// FindByEmail implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbAccount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// FindByID implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbAccount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// Update implements domain.AccountRepository
func (r *AccountRepositoryImpl) Update(ctx context.Context, account *domain.Account) error {
	return r.db.WithContext(ctx).Save(r.domainToDB(account)).Error
}

// MarkVerified implements domain.AccountRepository as a single UPDATE
// keyed by id; concurrent verifies are last-writer-wins.
func (r *AccountRepositoryImpl) MarkVerified(ctx context.Context, accountID uint) error {
	return r.db.WithContext(ctx).Model(&DBAccount{}).
		Where("id = ?", accountID).
		Update("verified", true).Error
}

// UpdatePassword implements domain.AccountRepository
func (r *AccountRepositoryImpl) UpdatePassword(ctx context.Context, accountID uint, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&DBAccount{}).
		Where("id = ?", accountID).
		Update("password", passwordHash).Error
}

// TouchLastLogin implements domain.AccountRepository
func (r *AccountRepositoryImpl) TouchLastLogin(ctx context.Context, accountID uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&DBAccount{}).
		Where("id = ?", accountID).
		Update("last_login", at).Error
}

// domainToDB converts a domain account to the database model
func (r *AccountRepositoryImpl) domainToDB(account *domain.Account) *DBAccount {
	return &DBAccount{
		ID:           account.ID,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Name:         account.Name,
		Role:         account.Role,
		Verified:     account.Verified,
		LastLogin:    account.LastLogin,
	}
}

// dbToDomain converts the database model to a domain account
func (r *AccountRepositoryImpl) dbToDomain(dbAccount *DBAccount) *domain.Account {
	return &domain.Account{
		ID:           dbAccount.ID,
		Email:        dbAccount.Email,
		PasswordHash: dbAccount.PasswordHash,
		Name:         dbAccount.Name,
		Role:         dbAccount.Role,
		Verified:     dbAccount.Verified,
		LastLogin:    dbAccount.LastLogin,
		CreatedAt:    dbAccount.CreatedAt,
		UpdatedAt:    dbAccount.UpdatedAt,
	}
}
