package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/gris34/psis-inscripciones-backend/internal/app/models"
)

// CreateDefaultData creates the default roles and the administrator account
// if they don't exist. It runs on every startup and is idempotent.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (roles, admin user)...")
	var finalErr error

	// --- Default roles --- //
	for _, roleName := range []string{appModels.RoleStudent, appModels.RoleAdmin} {
		_, err := dbPool.Exec(ctx, `INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, roleName)
		if err != nil {
			lgr.Error().Err(err).Str("role", roleName).Msg("Error creating default role")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Default admin account --- //
	var exists bool
	err := dbPool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = 'admin')`).Scan(&exists)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return errors.Join(finalErr, err)
	}

	if exists {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return finalErr
	}

	lgr.Info().Msg("Creating default admin user...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Admin123!"), bcrypt.DefaultCost)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return errors.Join(finalErr, err)
	}

	var adminID int64
	err = dbPool.QueryRow(ctx, `
		INSERT INTO users (username, password, first_name, last_name, email, is_active)
		VALUES ('admin', $1, 'System', 'Administrator', 'admin@inscripciones.edu', true)
		RETURNING id
	`, string(hashedPassword)).Scan(&adminID)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return errors.Join(finalErr, err)
	}

	_, err = dbPool.Exec(ctx, `
		INSERT INTO user_roles (user_id, role_id)
		SELECT $1, id FROM roles WHERE name = $2
		ON CONFLICT DO NOTHING
	`, adminID, appModels.RoleAdmin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error granting admin role")
		finalErr = errors.Join(finalErr, err)
	} else {
		lgr.Info().Int64("adminID", adminID).Msg("Default admin user created successfully")
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
