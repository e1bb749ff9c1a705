package repository

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/mro/internal/entity"
	"github.com/samandr77/microservices/mro/pkg/postgres"
)

var (
	testDB     *pgxpool.Pool
	testDBErr  error
	testDBOnce sync.Once
)

// SetupTestDatabase connects to TEST_POSTGRES_DSN and applies migrations once per test binary.
// Tests are skipped when the variable is not set.
func SetupTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	testDBOnce.Do(func() {
		testDBErr = postgres.UpMigrations(context.Background(), dsn)
		if testDBErr != nil {
			return
		}

		testDB, testDBErr = postgres.Connect(context.Background(), dsn, 10)
	})

	require.NoError(t, testDBErr)

	return testDB
}

// SeedCompany creates a company with one user per privilege. Every call gets its own tenant so tests do not
// need to clean up after each other.
func SeedCompany(t *testing.T, db *pgxpool.Pool) (entity.Principal, map[entity.Privilege]entity.Principal) {
	t.Helper()

	ctx := context.Background()
	companyID := uuid.Must(uuid.NewV4())
	name := "company-" + companyID.String()[:8]

	_, err := db.Exec(ctx, `INSERT INTO companies (id, name, created_at) VALUES ($1, $2, $3)`,
		companyID, name, time.Now())
	require.NoError(t, err)

	users := make(map[entity.Privilege]entity.Principal)

	for _, p := range []entity.Privilege{
		entity.PrivilegeAdmin,
		entity.PrivilegeManager,
		entity.PrivilegeTechnician,
		entity.PrivilegeReader,
	} {
		id := uuid.Must(uuid.NewV4())
		username := string(p) + "-" + id.String()

		_, err = db.Exec(ctx, `INSERT INTO users
			(id, company_id, username, email, password_hash, first_name, last_name, privilege, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			id, companyID, username, username+"@example.com", "x", "Test", string(p), p, time.Now(),
		)
		require.NoError(t, err)

		users[p] = entity.Principal{
			UserID:      id,
			CompanyID:   companyID,
			Privilege:   p,
			FirstName:   "Test",
			LastName:    string(p),
			Email:       username + "@example.com",
			Username:    username,
			CompanyName: name,
		}
	}

	return users[entity.PrivilegeAdmin], users
}
