package contact

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bicamihai/ContactsApi/config"
	"github.com/bicamihai/ContactsApi/internal/middleware"
	"github.com/bicamihai/ContactsApi/internal/models"
	"github.com/bicamihai/ContactsApi/internal/user"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&user.User{}, &user.RefreshToken{},
		&models.Contact{}, &models.Skill{}, &models.SkillLevel{}, &models.ContactSkill{},
	))
	return db
}

// newTestRouter wires the contact routes behind a stub auth middleware acting
// as the given user.
func newTestRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	repo := NewContactRepository(db)
	controller := NewContactController(repo, &config.Config{})

	contacts := r.Group("/api/contacts", func(c *gin.Context) {
		c.Set(middleware.AuthUserIDKey, userID)
	})
	contacts.GET("", controller.GetContacts)
	contacts.POST("", controller.CreateContact)
	contacts.GET("/:contact_id", controller.GetContact)
	contacts.PUT("/:contact_id", controller.UpdateContact)
	contacts.DELETE("/:contact_id", controller.DeleteContact)
	contacts.GET("/:contact_id/skills", controller.GetContactSkills)
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func seedContact(t *testing.T, db *gorm.DB, userID uint, first, last string) *models.Contact {
	t.Helper()
	contact := &models.Contact{
		FirstName:         first,
		LastName:          last,
		Address:           "1 Main St",
		Email:             first + "@example.com",
		MobilePhoneNumber: "12345678",
		UserID:            userID,
	}
	require.NoError(t, db.Create(contact).Error)
	return contact
}

func TestGetContacts_ReturnsOnlyCallersContacts(t *testing.T) {
	db := setupTestDB(t)
	mine := seedContact(t, db, 1, "Ann", "Smith")
	seedContact(t, db, 2, "Bob", "Jones")

	w := doJSON(newTestRouter(db, 1), http.MethodGet, "/api/contacts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var contacts []ContactResponse
	require.NoError(t, json.Unmarshal(env.Data, &contacts))

	require.Len(t, contacts, 1)
	assert.Equal(t, mine.ID, contacts[0].ID)
	assert.Equal(t, "Ann Smith", contacts[0].FullName)
}

func TestGetContact_MasksContactsOfOtherUsers(t *testing.T) {
	db := setupTestDB(t)
	other := seedContact(t, db, 2, "Bob", "Jones")

	w := doJSON(newTestRouter(db, 1), http.MethodGet, "/api/contacts/"+itoa(other.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Contact not found")
}

func TestGetContact_InvalidIDIsBadRequest(t *testing.T) {
	db := setupTestDB(t)

	w := doJSON(newTestRouter(db, 1), http.MethodGet, "/api/contacts/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateContact_ForcesOwnerToCaller(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db, 7)

	w := doJSON(r, http.MethodPost, "/api/contacts", ContactRequest{
		FirstName:         "Ann",
		LastName:          "Smith",
		Address:           "1 Main St",
		Email:             "ann@example.com",
		MobilePhoneNumber: "12345678",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/api/contacts/")

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var created ContactResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))

	var stored models.Contact
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, uint(7), stored.UserID)
}

func TestCreateContact_RejectsInvalidBody(t *testing.T) {
	db := setupTestDB(t)

	w := doJSON(newTestRouter(db, 1), http.MethodPost, "/api/contacts", map[string]string{
		"first_name": "Ann",
		"email":      "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateContact_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	contact := seedContact(t, db, 1, "Ann", "Smith")
	r := newTestRouter(db, 1)

	update := ContactRequest{
		FirstName:         "Anna",
		LastName:          "Smythe",
		Address:           "2 Side St",
		Email:             "anna@example.com",
		MobilePhoneNumber: "87654321",
	}
	w := doJSON(r, http.MethodPut, "/api/contacts/"+itoa(contact.ID), update)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/contacts/"+itoa(contact.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var got ContactResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))

	assert.Equal(t, update.FirstName, got.FirstName)
	assert.Equal(t, update.LastName, got.LastName)
	assert.Equal(t, update.Address, got.Address)
	assert.Equal(t, update.Email, got.Email)
	assert.Equal(t, update.MobilePhoneNumber, got.MobilePhoneNumber)
	assert.Equal(t, "Anna Smythe", got.FullName)
}

func TestUpdateContact_NotOwnedYields404(t *testing.T) {
	db := setupTestDB(t)
	other := seedContact(t, db, 2, "Bob", "Jones")

	w := doJSON(newTestRouter(db, 1), http.MethodPut, "/api/contacts/"+itoa(other.ID), ContactRequest{
		FirstName: "X", LastName: "Y", Address: "Z", Email: "x@example.com",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteContact_CascadesContactSkills(t *testing.T) {
	db := setupTestDB(t)
	contact := seedContact(t, db, 1, "Ann", "Smith")

	skill := models.Skill{SkillCode: 1, Name: "DrinkingBeer"}
	require.NoError(t, db.Create(&skill).Error)
	require.NoError(t, db.Create(&models.ContactSkill{ContactID: contact.ID, SkillID: skill.ID}).Error)

	w := doJSON(newTestRouter(db, 1), http.MethodDelete, "/api/contacts/"+itoa(contact.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.ContactSkill{}).Where("contact_id = ?", contact.ID).Count(&count).Error)
	assert.Zero(t, count)

	w = doJSON(newTestRouter(db, 1), http.MethodGet, "/api/contacts/"+itoa(contact.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteContact_NotOwnedYields404(t *testing.T) {
	db := setupTestDB(t)
	other := seedContact(t, db, 2, "Bob", "Jones")

	w := doJSON(newTestRouter(db, 1), http.MethodDelete, "/api/contacts/"+itoa(other.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Contact{}).Where("id = ?", other.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetContactSkills_JoinsSkillAndLevel(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, models.SeedReferenceData(db))
	contact := seedContact(t, db, 1, "Ann", "Smith")

	var skill models.Skill
	require.NoError(t, db.Where("skill_code = ?", 1).First(&skill).Error)
	var level models.SkillLevel
	require.NoError(t, db.Where("level_code = ?", 1).First(&level).Error)

	require.NoError(t, db.Create(&models.ContactSkill{
		ContactID:    contact.ID,
		SkillID:      skill.ID,
		SkillLevelID: &level.ID,
	}).Error)

	w := doJSON(newTestRouter(db, 1), http.MethodGet, "/api/contacts/"+itoa(contact.ID)+"/skills", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var rows []ContactSkillResponse
	require.NoError(t, json.Unmarshal(env.Data, &rows))

	require.Len(t, rows, 1)
	assert.Equal(t, skill.ID, rows[0].SkillID)
	assert.Equal(t, "DrinkingBeer", rows[0].SkillName)
	require.NotNil(t, rows[0].LevelCode)
	assert.Equal(t, 1, *rows[0].LevelCode)
	require.NotNil(t, rows[0].LevelDescription)
	assert.Equal(t, "Beginner", *rows[0].LevelDescription)
}

func TestGetContactSkills_NotOwnedYields404(t *testing.T) {
	db := setupTestDB(t)
	other := seedContact(t, db, 2, "Bob", "Jones")

	w := doJSON(newTestRouter(db, 1), http.MethodGet, "/api/contacts/"+itoa(other.ID)+"/skills", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
