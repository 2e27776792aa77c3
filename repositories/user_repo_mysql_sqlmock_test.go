package repositories

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"userapi/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// helper: new GORM DB using a sqlmock connection with MySQL dialect.
func newMySQLMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	// Important: pass the existing *sql.DB to gorm's mysql driver
	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true, // no real server to ping
	})

	gdb, err := gorm.Open(dial, &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock, sqlDB
}

func userRows(ids ...uint) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "username", "name", "email", "password", "created_at", "updated_at"})
	for _, id := range ids {
		rows.AddRow(id, "u", "N", "u@x.y", "hash", time.Now(), time.Now())
	}
	return rows
}

func TestUserRepository_Create(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()

	repo := NewUserRepository(db)
	now := time.Now()

	// GORM INSERT: match the table and columns; exact SQL can differ
	// slightly, so only the important bits are pinned.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `users` (`username`,`name`,`email`,`password`,`created_at`,`updated_at`) VALUES (?,?,?,?,?,?)")).
		WithArgs("zed", "Zed", "z@x.y", "hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	u := &models.User{Username: "zed", Name: "Zed", Email: "z@x.y", Password: "hash", CreatedAt: now, UpdatedAt: now}
	err := repo.Create(u)
	require.NoError(t, err)
	assert.Equal(t, uint(1), u.ID) // GORM maps last insert id
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()

	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `users` WHERE username = ? ORDER BY `users`.`id` LIMIT ?",
	)).WithArgs("u", sqlmock.AnyArg()).
		WillReturnRows(userRows(2))

	u, err := repo.FindByUsername("u")
	require.NoError(t, err)
	assert.Equal(t, uint(2), u.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `users` WHERE `users`.`id` = ?")).
		WithArgs(999).
		WillReturnResult(sqlmock.NewResult(0, 0)) // RowsAffected = 0 -> not found
	mock.ExpectCommit()

	err := repo.Delete(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

// The ordering must be total: ties on the sort field break by id, and
// descending flips the tie-break too.
func TestUserRepository_List_OrderIncludesTieBreak(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `users`")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `users` ORDER BY username ASC, id ASC LIMIT ?",
	)).WithArgs(sqlmock.AnyArg()).
		WillReturnRows(userRows(1, 2, 3))

	items, total, err := repo.List("username", false, 0, 15)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, items, 3)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List_DescendingFlipsWholeOrdering(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `users`")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `users` ORDER BY name DESC, id DESC LIMIT ?",
	)).WithArgs(sqlmock.AnyArg()).
		WillReturnRows(userRows(3, 2, 1))

	_, _, err := repo.List("name", true, 0, 15)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List_IDSortHasNoDuplicateTieBreak(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `users`")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `users` ORDER BY id ASC LIMIT ?",
	)).WithArgs(sqlmock.AnyArg()).
		WillReturnRows(userRows(1))

	_, _, err := repo.List("id", false, 0, 15)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List_SecondPageUsesOffset(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `users`")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(16))
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `users` ORDER BY id ASC LIMIT ? OFFSET ?",
	)).WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(userRows(16))

	items, total, err := repo.List("id", false, 15, 15)
	require.NoError(t, err)
	assert.Equal(t, int64(16), total)
	assert.Len(t, items, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}
