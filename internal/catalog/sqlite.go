package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"

	"github.com/fjod/storefront/internal/domain"
)

// SQLite serves the catalog from a sqlite database file. Image lists
// and tag lists are stored as JSON text columns.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(s.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

// Seed inserts products and reviews into an empty database. A
// non-empty products table leaves the database untouched.
func (s *SQLite) Seed(ctx context.Context, products []domain.Product, reviews []domain.Review) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, p := range products {
		images, err := json.Marshal(p.Images)
		if err != nil {
			return fmt.Errorf("failed to marshal images: %w", err)
		}
		tags, err := json.Marshal(p.Tags)
		if err != nil {
			return fmt.Errorf("failed to marshal tags: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO products
				(id, title, description, price, discount_price, category,
				 images, rating, review_count, stock, brand, tags)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`, p.ID, p.Title, p.Description, p.Price, p.DiscountPrice, p.Category,
			string(images), p.Rating, p.ReviewCount, p.Stock, p.Brand, string(tags))
		if err != nil {
			return fmt.Errorf("failed to insert product %s: %w", p.ID, err)
		}
	}

	for _, r := range reviews {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO reviews
				(id, product_id, user_name, rating, comment, date, helpful)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, r.ID, r.ProductID, r.UserName, r.Rating, r.Comment, r.Date, r.Helpful)
		if err != nil {
			return fmt.Errorf("failed to insert review %s: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

const productColumns = `
	id, title, description, price, discount_price, category,
	images, rating, review_count, stock, brand, tags
`

func (s *SQLite) ListAll(ctx context.Context) ([]domain.Product, error) {
	return s.queryProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY id
	`)
}

func (s *SQLite) FindByID(ctx context.Context, id string) (domain.Product, error) {
	products, err := s.queryProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1
	`, id)
	if err != nil {
		return domain.Product{}, err
	}
	if len(products) == 0 {
		return domain.Product{}, ErrProductNotFound
	}
	return products[0], nil
}

func (s *SQLite) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT category FROM products ORDER BY category
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return categories, nil
}

func (s *SQLite) RelatedTo(ctx context.Context, id string, limit int) ([]domain.Product, error) {
	return s.queryProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id != $1
		  AND category = (SELECT category FROM products WHERE id = $1)
		ORDER BY id
		LIMIT $2
	`, id, limit)
}

func (s *SQLite) ReviewsFor(ctx context.Context, id string) ([]domain.Review, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, product_id, user_name, rating, comment, date, helpful
		FROM reviews
		WHERE product_id = $1
		ORDER BY date DESC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var r domain.Review
		err := rows.Scan(&r.ID, &r.ProductID, &r.UserName, &r.Rating, &r.Comment, &r.Date, &r.Helpful)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return reviews, nil
}

func (s *SQLite) Search(ctx context.Context, query string) ([]domain.Product, error) {
	pattern := "%" + query + "%"
	return s.queryProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE title LIKE $1
		   OR description LIKE $1
		   OR brand LIKE $1
		   OR tags LIKE $1
		ORDER BY id
	`, pattern)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var images, tags string
		err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.Price,
			&p.DiscountPrice,
			&p.Category,
			&images,
			&p.Rating,
			&p.ReviewCount,
			&p.Stock,
			&p.Brand,
			&tags,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		if err := json.Unmarshal([]byte(images), &p.Images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal images: %w", err)
		}
		if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return products, nil
}
