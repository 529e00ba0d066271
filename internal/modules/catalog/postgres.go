package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository reads listings from the bike_listings table.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const listingColumns = `id,name,price,original_price,category,brand,model,year,size,color,condition,location,
	images,seller_name,seller_avatar,seller_rating,seller_reviews,seller_location,seller_verified,
	seller_member_since,description,specifications,features`

// Migrate creates the listing table when it does not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS bike_listings (
			id                  INTEGER PRIMARY KEY,
			name                TEXT    NOT NULL,
			price               INTEGER NOT NULL,
			original_price      INTEGER NOT NULL DEFAULT 0,
			category            TEXT    NOT NULL,
			brand               TEXT    NOT NULL,
			model               TEXT    NOT NULL DEFAULT '',
			year                INTEGER NOT NULL DEFAULT 0,
			size                TEXT    NOT NULL DEFAULT '',
			color               TEXT    NOT NULL DEFAULT '',
			condition           TEXT    NOT NULL,
			location            TEXT    NOT NULL DEFAULT '',
			images              TEXT[]  NOT NULL DEFAULT '{}',
			seller_name         TEXT    NOT NULL,
			seller_avatar       TEXT    NOT NULL DEFAULT '',
			seller_rating       NUMERIC(3,2) NOT NULL DEFAULT 0,
			seller_reviews      INTEGER NOT NULL DEFAULT 0,
			seller_location     TEXT    NOT NULL DEFAULT '',
			seller_verified     BOOLEAN NOT NULL DEFAULT false,
			seller_member_since TEXT    NOT NULL DEFAULT '',
			description         TEXT    NOT NULL DEFAULT '',
			specifications      JSONB   NOT NULL DEFAULT '[]',
			features            TEXT[]  NOT NULL DEFAULT '{}'
		)`)
	if err != nil {
		return fmt.Errorf("migrate bike_listings: %w", err)
	}
	return nil
}

// Seed inserts the given listings, leaving rows that already exist untouched.
func Seed(ctx context.Context, db *sql.DB, listings []*Listing) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin: %w", err)
	}
	defer tx.Rollback()

	for _, l := range listings {
		specs, err := json.Marshal(l.Specifications)
		if err != nil {
			return fmt.Errorf("seed: encode specifications for %d: %w", l.ID, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO bike_listings (`+listingColumns+`)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
			ON CONFLICT (id) DO NOTHING`,
			l.ID, l.Name, l.Price, l.OriginalPrice, l.Category, l.Brand, l.Model, l.Year,
			l.Size, l.Color, string(l.Condition), l.Location, pq.Array(l.Images),
			l.Seller.Name, l.Seller.Avatar, l.Seller.Rating, l.Seller.Reviews, l.Seller.Location,
			l.Seller.Verified, l.Seller.MemberSince, l.Description, specs, pq.Array(l.Features))
		if err != nil {
			return fmt.Errorf("seed: insert listing %d: %w", l.ID, err)
		}
	}
	return tx.Commit()
}

func scanListing(scan func(...interface{}) error) (*Listing, error) {
	l := &Listing{}
	var condition string
	var specs []byte
	err := scan(&l.ID, &l.Name, &l.Price, &l.OriginalPrice, &l.Category, &l.Brand,
		&l.Model, &l.Year, &l.Size, &l.Color, &condition, &l.Location, pq.Array(&l.Images),
		&l.Seller.Name, &l.Seller.Avatar, &l.Seller.Rating, &l.Seller.Reviews,
		&l.Seller.Location, &l.Seller.Verified, &l.Seller.MemberSince,
		&l.Description, &specs, pq.Array(&l.Features))
	if err != nil {
		return nil, err
	}
	l.Condition = Condition(condition)
	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &l.Specifications); err != nil {
			return nil, fmt.Errorf("decode specifications for %d: %w", l.ID, err)
		}
	}
	return l, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]*Listing, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+listingColumns+` FROM bike_listings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	var listings []*Listing
	for rows.Next() {
		l, err := scanListing(rows.Scan)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*Listing, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+listingColumns+` FROM bike_listings WHERE id=$1`, id)
	l, err := scanListing(row.Scan)
	if err != nil {
		return nil, lookupError(id, err)
	}
	return l, nil
}

// lookupError maps a missing row to ErrNotFound and wraps anything else.
func lookupError(id int, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("get listing %d: %w", id, err)
}

func (r *postgresRepo) Source() string { return "postgres" }
