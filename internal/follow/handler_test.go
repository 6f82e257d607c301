package follow

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Brideshead/api-final-yatube/internal/database"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:                 mockDB,
		DriverName:           "postgres",
		PreferSimpleProtocol: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	originalDB := database.DB
	database.DB = db

	return mock, func() {
		database.DB = originalDB
		mockDB.Close()
	}
}

func newFollowRequest(t *testing.T, userID, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/follow", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", userID)

	return c, w
}

func TestFollowUserMissingField(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	c, w := newFollowRequest(t, "user1", `{}`)
	FollowUser(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "obligatoire")
}

func TestFollowUserUnknownUser(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

	c, w := newFollowRequest(t, "user1", `{"following":"ghost"}`)
	FollowUser(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Utilisateur inexistant")
}

func TestFollowUserSelfFollow(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// Le username fourni se résout vers le demandeur lui-même
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow("user1", "alice"))

	c, w := newFollowRequest(t, "user1", `{"following":"alice"}`)
	FollowUser(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Impossible de se suivre soi-même")
}

func TestFollowUserDuplicate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow("user2", "bob"))
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "user_id", "following_id"}).
			AddRow("follow1", time.Now(), "user1", "user2"))

	c, w := newFollowRequest(t, "user1", `{"following":"bob"}`)
	FollowUser(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Déjà abonné à cet auteur")
}

func TestFollowUserSuccess(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// Résolution du username suivi
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow("user2", "bob"))
	// Vérification de doublon
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "user_id", "following_id"}))
	// Chargement du follower pour la sérialisation
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow("user1", "alice"))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "follows"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "user1", "user2").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	c, w := newFollowRequest(t, "user1", `{"following":"bob"}`)
	FollowUser(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"user":"alice"`)
	assert.Contains(t, w.Body.String(), `"following":"bob"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Une panne d'infrastructure à l'insertion ne doit pas être présentée
// au client comme une erreur de validation de doublon.
func TestFollowUserInsertFailure(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow("user2", "bob"))
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "user_id", "following_id"}))
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow("user1", "alice"))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "follows"`).
		WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	c, w := newFollowRequest(t, "user1", `{"following":"bob"}`)
	FollowUser(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Erreur ajout du follow")
	assert.NotContains(t, w.Body.String(), "Déjà abonné")
}

// L'auto-abonnement doit être signalé comme tel même si un doublon
// existe aussi : la résolution du username s'arrête avant la
// vérification de la paire.
func TestFollowUserSelfFollowBeforeDuplicate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow("user1", "alice"))

	c, w := newFollowRequest(t, "user1", `{"following":"alice"}`)
	FollowUser(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "soi-même")
	assert.NotContains(t, w.Body.String(), "Déjà abonné")
	// La requête de vérification de doublon n'a jamais été émise
	assert.NoError(t, mock.ExpectationsWereMet())
}
