package tests

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	dbadapter "tasktracker/internal/adapter/db"
	"tasktracker/internal/adapter/export"
	httpadapter "tasktracker/internal/adapter/http"
	"tasktracker/internal/adapter/http/handlers"
	appservice "tasktracker/internal/app/service"
	"tasktracker/internal/config"
	"tasktracker/pkg/translator"
)

// IntegrationSuiteBase runs against a throwaway SQLite file unless
// TEST_DB_DRIVER=mysql points it at a MySQL server.
type IntegrationSuiteBase struct {
	suite.Suite

	adminDB    *sqlx.DB
	Store      *dbadapter.Store
	Router     *gin.Engine
	testDBName string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  filepath.Join("..", "..", "..", "..", "pkg", "translator", "translation"),
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	if config.DriverMySQL == envOrDefault("TEST_DB_DRIVER", config.DriverSQLite) {
		s.setupMySQL()
	} else {
		store, err := dbadapter.OpenSQLite(filepath.Join(s.T().TempDir(), "integration.db"))
		s.Require().NoError(err)
		s.Store = store
	}

	router, err := httpadapter.NewRouter(zap.NewNop(), nil, s.handlers())
	s.Require().NoError(err)
	s.Router = router
}

func (s *IntegrationSuiteBase) setupMySQL() {
	host := envOrDefault("MYSQL_HOST", "127.0.0.1")
	port := envOrDefault("MYSQL_PORT", "3306")
	rootUser := envOrDefault("MYSQL_ROOT_USER", "root")
	rootPassword := envOrDefault("MYSQL_ROOT_PASSWORD", "root")
	database := envOrDefault("MYSQL_TEST_DATABASE", envOrDefault("MYSQL_DATABASE", "task_tracker")+"_test")
	params := envOrDefault("MYSQL_PARAMS", "parseTime=true&multiStatements=true")

	adminDB, err := sqlx.Connect("mysql", mysqlDSN(rootUser, rootPassword, host, port, "", params))
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	s.adminDB = adminDB

	_, err = s.adminDB.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", database))
	s.Require().NoError(err)

	db, err := sqlx.Connect("mysql", mysqlDSN(rootUser, rootPassword, host, port, database, params))
	s.Require().NoError(err)
	s.Store = dbadapter.NewStore(db, config.DriverMySQL)
	s.testDBName = database
}

func (s *IntegrationSuiteBase) handlers() httpadapter.Handlers {
	taskService := appservice.NewTaskService(dbadapter.NewTaskRepository(s.Store))

	return httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(s.Store.DB, s.Store.Driver),
		Task:     handlers.NewTaskHandler(taskService, export.NewTaskWorkbook()),
		Subtask:  handlers.NewSubtaskHandler(appservice.NewSubtaskService(dbadapter.NewSubtaskRepository(s.Store))),
		Note:     handlers.NewNoteHandler(appservice.NewNoteService(dbadapter.NewNoteRepository(s.Store))),
		Category: handlers.NewCategoryHandler(appservice.NewCategoryService(dbadapter.NewCategoryRepository(s.Store))),
		Settings: handlers.NewSettingsHandler(appservice.NewSettingsService(dbadapter.NewSettingsRepository(s.Store))),
	}
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.Store != nil {
		s.Require().NoError(s.Store.Close())
	}

	if s.adminDB != nil && s.testDBName != "" && strings.HasSuffix(s.testDBName, "_test") {
		_, err := s.adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.testDBName))
		s.Require().NoError(err)
	}

	if s.adminDB != nil {
		s.Require().NoError(s.adminDB.Close())
	}
}

func (s *IntegrationSuiteBase) ResetDatabase() {
	ctx := context.Background()
	s.Require().NoError(dbadapter.MigrateDown(ctx, s.Store))
	s.Require().NoError(dbadapter.MigrateUp(ctx, s.Store))
}

func mysqlDSN(user, password, host, port, database, params string) string {
	if database == "" {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/?%s", user, password, host, port, params)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, password, host, port, database, params)
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
