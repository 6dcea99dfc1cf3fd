package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/skillconnect/server/internal/logger"
	"github.com/skillconnect/server/internal/types"
	"github.com/skillconnect/server/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "skillconnect", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	log.Info("Connecting to Postgres...")
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	return &PostgresService{db: gdb, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.Post{},
		&types.Follow{},
		&types.Like{},
		&types.LearningPlan{},
		&types.LearningPlanItem{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	s.log.Info("Configuring foreign key relationships for postgres tables...")
	constraints := []struct {
		name string
		ddl  string
	}{
		{
			name: "fk_user_token_user_id",
			ddl: `ALTER TABLE "user_token"
				ADD CONSTRAINT "fk_user_token_user_id"
				FOREIGN KEY ("user_id") REFERENCES "user"("id")
				ON DELETE CASCADE`,
		},
		{
			name: "fk_learning_plan_owner_user_id",
			ddl: `ALTER TABLE "learning_plan"
				ADD CONSTRAINT "fk_learning_plan_owner_user_id"
				FOREIGN KEY ("owner_user_id") REFERENCES "user"("id")
				ON DELETE CASCADE`,
		},
		{
			name: "fk_learning_plan_item_plan_id",
			ddl: `ALTER TABLE "learning_plan_item"
				ADD CONSTRAINT "fk_learning_plan_item_plan_id"
				FOREIGN KEY ("plan_id") REFERENCES "learning_plan"("id")
				ON DELETE CASCADE`,
		},
		{
			name: "fk_like_post_id",
			ddl: `ALTER TABLE "like"
				ADD CONSTRAINT "fk_like_post_id"
				FOREIGN KEY ("post_id") REFERENCES "post"("id")
				ON DELETE CASCADE`,
		},
	}
	for _, c := range constraints {
		var exists bool
		if err := s.db.Raw(
			`SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = ?)`, c.name,
		).Scan(&exists).Error; err != nil {
			return fmt.Errorf("failed to check constraint %s: %w", c.name, err)
		}
		if exists {
			continue
		}
		if err := s.db.Exec(c.ddl).Error; err != nil {
			return fmt.Errorf("failed to add %s: %w", c.name, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
