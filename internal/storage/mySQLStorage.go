package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"net"
	"time"

	appErrors "github.com/fatali-fataliyev/finance_graphql/customErrors"
	"github.com/fatali-fataliyev/finance_graphql/internal/config"
	"github.com/fatali-fataliyev/finance_graphql/internal/contextutil"
	"github.com/fatali-fataliyev/finance_graphql/internal/finance"
	"github.com/fatali-fataliyev/finance_graphql/logging"
	"github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

const (
	mysqlErrDuplicateEntry = 1062
	mysqlErrNoReferenced   = 1452

	connectAttempts = 15
	connectDelay    = 3 * time.Second
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// --- INIT START --- //

// BuildDSN turns the database settings into a go-sql-driver DSN that parses DATETIME columns as UTC time.Time.
func BuildDSN(cfg *config.Config) (*mysql.Config, error) {
	if cfg.FullDSN != "" {
		dsn, err := mysql.ParseDSN(cfg.FullDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to parse FULL_DSN: %w", err)
		}
		dsn.ParseTime = true
		dsn.Loc = time.UTC
		return dsn, nil
	}

	dsn := mysql.NewConfig()
	dsn.User = cfg.DBUser
	dsn.Passwd = cfg.DBPass
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(cfg.DBHost, cfg.DBPort)
	dsn.DBName = cfg.DBName
	dsn.ParseTime = true
	dsn.Loc = time.UTC
	return dsn, nil
}

// Init waits for the server, creates the database if it is missing and applies pending migrations.
func Init(cfg *config.Config) (*sql.DB, error) {
	dsn, err := BuildDSN(cfg)
	if err != nil {
		return nil, err
	}
	if dsn.DBName == "" {
		return nil, fmt.Errorf("database name is required")
	}

	adminDsn := dsn.Clone()
	adminDsn.DBName = ""

	logging.Logger.Info("Connecting to MySQL server for initialization...")
	adminDb, err := sql.Open("mysql", adminDsn.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open admin mysql handle: %w", err)
	}
	defer adminDb.Close()

	if err := waitForDatabase(adminDb); err != nil {
		return nil, err
	}

	createDbSql := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s` CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci;", dsn.DBName)
	if _, err := adminDb.Exec(createDbSql); err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}

	logging.Logger.Info("Running migrations...")
	if err := RunMigrations(dsn); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logging.Logger.Info("Connecting to database...")
	db, err := sql.Open("mysql", dsn.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database handle: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logging.Logger.Info("Connected to database successfully")
	return db, nil
}

func waitForDatabase(db *sql.DB) error {
	var err error
	for i := 0; i < connectAttempts; i++ {
		if err = db.Ping(); err == nil {
			return nil
		}
		logging.Logger.Warnf("Database not ready, retrying... (%d/%d)", i+1, connectAttempts)
		time.Sleep(connectDelay)
	}
	return fmt.Errorf("database unreachable after %d attempts: %w", connectAttempts, err)
}

// RunMigrations applies the embedded migrations over a dedicated connection,
// since the migrate driver closes the handle it is given.
func RunMigrations(dsn *mysql.Config) error {
	migrateDsn := dsn.Clone()
	migrateDsn.MultiStatements = true

	migrateDB, err := sql.Open("mysql", migrateDsn.FormatDSN())
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := migratemysql.WithInstance(migrateDB, &migratemysql.Config{})
	if err != nil {
		return fmt.Errorf("create mysql driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "mysql", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	logging.Logger.Info("all migrations applied successfully")
	return nil
}

// --- INIT END --- //

type MySQLStorage struct {
	db *sql.DB
}

func NewMySQLStorage(db *sql.DB) *MySQLStorage {
	return &MySQLStorage{db: db}
}

func (mySql *MySQLStorage) GetStorageType() string {
	return "MySQL"
}

func isMySQLError(err error, number uint16) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == number
}

func (mySql *MySQLStorage) SaveUser(ctx context.Context, user finance.User) error {
	traceID := contextutil.TraceIDFromContext(ctx)

	query := "INSERT INTO users (id, google_id, name, email, preferred_currency) VALUES (?, ?, ?, ?, ?);"
	_, err := mySql.db.ExecContext(ctx, query, user.ID, EmptyToNullString(user.GoogleID), EmptyToNullString(user.Name), user.Email, EmptyToNullString(user.PreferredCurrency))
	if err != nil {
		// Lost a race against a concurrent createUser with the same email.
		if isMySQLError(err, mysqlErrDuplicateEntry) {
			return appErrors.ErrorResponse{
				Code:    appErrors.ErrDuplicateUser,
				Message: "User with this email already exists",
			}
		}
		logging.Logger.Errorf("[TraceID=%s] | failed to save user in Storage.SaveUser() function | Error: %v", traceID, err)
		return storeFailure("Failed to create user, try again later.")
	}
	return nil
}

func (mySql *MySQLStorage) getUser(ctx context.Context, column string, value string) (*finance.User, error) {
	traceID := contextutil.TraceIDFromContext(ctx)

	query := "SELECT id, google_id, name, email, preferred_currency FROM users WHERE " + column + " = ?;"
	var row dbUser
	err := mySql.db.QueryRowContext(ctx, query, value).Scan(&row.ID, &row.GoogleID, &row.Name, &row.Email, &row.PreferredCurrency)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logging.Logger.Errorf("[TraceID=%s] | failed to get user by %s in Storage.getUser() function | Error: %v", traceID, column, err)
		return nil, storeFailure("Failed to get user, try again later.")
	}

	user := row.toUser()
	return &user, nil
}

func (mySql *MySQLStorage) GetUserByEmail(ctx context.Context, email string) (*finance.User, error) {
	return mySql.getUser(ctx, "email", email)
}

func (mySql *MySQLStorage) GetUserById(ctx context.Context, userId string) (*finance.User, error) {
	return mySql.getUser(ctx, "id", userId)
}

func (mySql *MySQLStorage) UpdateUserCurrency(ctx context.Context, userId string, currency string) error {
	traceID := contextutil.TraceIDFromContext(ctx)

	query := "UPDATE users SET preferred_currency = ? WHERE id = ?;"
	_, err := mySql.db.ExecContext(ctx, query, EmptyToNullString(currency), userId)
	if err != nil {
		logging.Logger.Errorf("[TraceID=%s] | failed to update user currency in Storage.UpdateUserCurrency() function | Error: %v", traceID, err)
		return storeFailure("Failed to update user, try again later.")
	}
	return nil
}

func (mySql *MySQLStorage) SaveEarnings(ctx context.Context, e finance.Earnings) error {
	traceID := contextutil.TraceIDFromContext(ctx)

	query := "INSERT INTO earnings (id, description, amount, currency, `date`, user_id) VALUES (?, ?, ?, ?, ?, ?);"
	_, err := mySql.db.ExecContext(ctx, query, e.ID, EmptyToNullString(e.Description), e.Amount, EmptyToNullString(e.Currency), e.Date.UTC(), e.UserID)
	if err != nil {
		return mySql.recordWriteError(traceID, "SaveEarnings", err)
	}
	return nil
}

func (mySql *MySQLStorage) SaveExpenses(ctx context.Context, e finance.Expenses) error {
	traceID := contextutil.TraceIDFromContext(ctx)

	query := "INSERT INTO expenses (id, description, category, amount, currency, `date`, user_id, is_fixed) VALUES (?, ?, ?, ?, ?, ?, ?, ?);"
	_, err := mySql.db.ExecContext(ctx, query, e.ID, EmptyToNullString(e.Description), EmptyToNullString(e.Category), e.Amount, EmptyToNullString(e.Currency), e.Date.UTC(), e.UserID, e.IsFixed)
	if err != nil {
		return mySql.recordWriteError(traceID, "SaveExpenses", err)
	}
	return nil
}

func (mySql *MySQLStorage) recordWriteError(traceID string, function string, err error) error {
	if isMySQLError(err, mysqlErrNoReferenced) {
		return appErrors.ErrorResponse{
			Code:    appErrors.ErrInvalidInput,
			Message: "The user does not exist.",
		}
	}
	logging.Logger.Errorf("[TraceID=%s] | failed to save record in Storage.%s() function | Error: %v", traceID, function, err)
	return storeFailure("Failed to save record, try again later.")
}

// periodFilter appends the optional date bounds of period to query.
func periodFilter(query string, args []interface{}, period finance.DateRange) (string, []interface{}) {
	if !period.From.IsZero() {
		query += " AND `date` >= ?"
		args = append(args, period.From.UTC())
	}
	if !period.To.IsZero() {
		query += " AND `date` <= ?"
		args = append(args, period.To.UTC())
	}
	return query + " ORDER BY `date` DESC;", args
}

func (mySql *MySQLStorage) GetEarnings(ctx context.Context, userId string, period finance.DateRange) ([]finance.Earnings, error) {
	traceID := contextutil.TraceIDFromContext(ctx)

	query, args := periodFilter("SELECT id, description, amount, currency, `date`, user_id FROM earnings WHERE user_id = ?", []interface{}{userId}, period)
	rows, err := mySql.db.QueryContext(ctx, query, args...)
	if err != nil {
		logging.Logger.Errorf("[TraceID=%s] | failed to get earnings from Storage.GetEarnings() function | Error : %v", traceID, err)
		return nil, storeFailure("Failed to get earnings, try again later.")
	}
	defer rows.Close()

	earnings := []finance.Earnings{}
	for rows.Next() {
		var row dbEarnings
		if err := rows.Scan(&row.ID, &row.Description, &row.Amount, &row.Currency, &row.Date, &row.UserID); err != nil {
			logging.Logger.Errorf("[TraceID=%s] | failed to scan row in Storage.GetEarnings() function | Error : %v", traceID, err)
			return nil, storeFailure("Failed to get earnings, try again later.")
		}
		earnings = append(earnings, row.toEarnings())
	}
	if err := rows.Err(); err != nil {
		logging.Logger.Errorf("[TraceID=%s] | failed to iterate rows in Storage.GetEarnings() function | Error : %v", traceID, err)
		return nil, storeFailure("Failed to get earnings, try again later.")
	}

	return earnings, nil
}

func (mySql *MySQLStorage) GetExpenses(ctx context.Context, userId string, period finance.DateRange) ([]finance.Expenses, error) {
	traceID := contextutil.TraceIDFromContext(ctx)

	query, args := periodFilter("SELECT id, description, category, amount, currency, `date`, user_id, is_fixed FROM expenses WHERE user_id = ?", []interface{}{userId}, period)
	rows, err := mySql.db.QueryContext(ctx, query, args...)
	if err != nil {
		logging.Logger.Errorf("[TraceID=%s] | failed to get expenses from Storage.GetExpenses() function | Error : %v", traceID, err)
		return nil, storeFailure("Failed to get expenses, try again later.")
	}
	defer rows.Close()

	expenses := []finance.Expenses{}
	for rows.Next() {
		var row dbExpenses
		if err := rows.Scan(&row.ID, &row.Description, &row.Category, &row.Amount, &row.Currency, &row.Date, &row.UserID, &row.IsFixed); err != nil {
			logging.Logger.Errorf("[TraceID=%s] | failed to scan row in Storage.GetExpenses() function | Error : %v", traceID, err)
			return nil, storeFailure("Failed to get expenses, try again later.")
		}
		expenses = append(expenses, row.toExpenses())
	}
	if err := rows.Err(); err != nil {
		logging.Logger.Errorf("[TraceID=%s] | failed to iterate rows in Storage.GetExpenses() function | Error : %v", traceID, err)
		return nil, storeFailure("Failed to get expenses, try again later.")
	}

	return expenses, nil
}

func (mySql *MySQLStorage) GetEarningsById(ctx context.Context, earningsId string) (*finance.Earnings, error) {
	traceID := contextutil.TraceIDFromContext(ctx)

	query := "SELECT id, description, amount, currency, `date`, user_id FROM earnings WHERE id = ?;"
	var row dbEarnings
	err := mySql.db.QueryRowContext(ctx, query, earningsId).Scan(&row.ID, &row.Description, &row.Amount, &row.Currency, &row.Date, &row.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logging.Logger.Errorf("[TraceID=%s] | failed to scan row in Storage.GetEarningsById() function | Error : %v", traceID, err)
		return nil, storeFailure("Failed to get earnings, try again later.")
	}

	earnings := row.toEarnings()
	return &earnings, nil
}

func (mySql *MySQLStorage) GetExpensesById(ctx context.Context, expensesId string) (*finance.Expenses, error) {
	traceID := contextutil.TraceIDFromContext(ctx)

	query := "SELECT id, description, category, amount, currency, `date`, user_id, is_fixed FROM expenses WHERE id = ?;"
	var row dbExpenses
	err := mySql.db.QueryRowContext(ctx, query, expensesId).Scan(&row.ID, &row.Description, &row.Category, &row.Amount, &row.Currency, &row.Date, &row.UserID, &row.IsFixed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logging.Logger.Errorf("[TraceID=%s] | failed to scan row in Storage.GetExpensesById() function | Error : %v", traceID, err)
		return nil, storeFailure("Failed to get expenses, try again later.")
	}

	expenses := row.toExpenses()
	return &expenses, nil
}

func (mySql *MySQLStorage) deleteById(ctx context.Context, table string, id string) error {
	traceID := contextutil.TraceIDFromContext(ctx)

	result, err := mySql.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?;", id)
	if err != nil {
		logging.Logger.Errorf("[TraceID=%s] | failed to delete from %s in Storage.deleteById() function | Error : %v", traceID, table, err)
		return storeFailure("Failed to delete record, try again later.")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logging.Logger.Errorf("[TraceID=%s] | failed to read affected rows in Storage.deleteById() function | Error : %v", traceID, err)
		return storeFailure("Failed to delete record, try again later.")
	}
	if affected == 0 {
		return notFound("The record does not exist.")
	}
	return nil
}

func (mySql *MySQLStorage) DeleteEarnings(ctx context.Context, earningsId string) error {
	return mySql.deleteById(ctx, "earnings", earningsId)
}

func (mySql *MySQLStorage) DeleteExpenses(ctx context.Context, expensesId string) error {
	return mySql.deleteById(ctx, "expenses", expensesId)
}
