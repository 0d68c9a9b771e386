package trivia

import (
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"triviahub/models"
)

// Service implements the application operations on top of the database.
// Handlers stay thin; anything that touches more than one row lives here.
type Service struct {
	db     *gorm.DB
	scores *scoreCache
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, scores: newScoreCache(topScoresTTL)}
}

// Register creates a new account. The password is stored as a bcrypt hash,
// never as plain text.
func (s *Service) Register(username, email, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrValidation
	}

	var existing models.User
	err := s.db.Where("email = ? OR username = ?", email, username).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateIdentity
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	log.Printf("Register: created user %s (id=%d)", user.Username, user.ID)
	return &user, nil
}

// Authenticate resolves the identifier against email or username and verifies
// the password against the stored hash.
func (s *Service) Authenticate(identifier, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ? OR username = ?", identifier, identifier).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// orderedQuestions preloads questions and options in insertion order, so
// iteration order (and the first-correct-option tie-break at scoring time)
// is stable.
func orderedQuestions(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("questions.id") }).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB { return db.Order("options.id") })
}

// GetTriviaSet returns a set by public id with questions and options attached.
func (s *Service) GetTriviaSet(publicID string) (*models.TriviaSet, error) {
	var set models.TriviaSet
	err := orderedQuestions(s.db).
		Preload("User").
		Where("public_id = ?", publicID).
		First(&set).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &set, nil
}

// SetsForUser lists the sets a user created, for the dashboard view.
func (s *Service) SetsForUser(userID uint) ([]models.TriviaSet, error) {
	var sets []models.TriviaSet
	err := orderedQuestions(s.db).
		Where("user_id = ?", userID).
		Find(&sets).Error
	if err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		sets = []models.TriviaSet{}
	}
	return sets, nil
}

// Search matches the term as a case-insensitive substring of a set's title or category.
func (s *Service) Search(term string) ([]models.TriviaSet, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	var sets []models.TriviaSet
	err := s.db.
		Where("LOWER(set_title) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern).
		Find(&sets).Error
	if err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		sets = []models.TriviaSet{}
	}
	return sets, nil
}

// findSetForOwner resolves a set by public id and verifies the actor created it.
func (s *Service) findSetForOwner(actorID uint, publicID string) (*models.TriviaSet, error) {
	var set models.TriviaSet
	err := orderedQuestions(s.db).
		Where("public_id = ?", publicID).
		First(&set).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if set.UserID != actorID {
		return nil, ErrNotOwner
	}
	return &set, nil
}
