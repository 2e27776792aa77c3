// Use-case layer; orchestrates business rules, not HTTP or DB details.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"userapi/core"
	"userapi/models"
	"userapi/repositories"
	"userapi/utils"
	"userapi/utils/redislog"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// UserService lists all use-cases that handlers can call.
type UserService interface {
	// Public endpoints:
	Register(req models.RegisterRequest) (*models.User, error)
	Login(req models.LoginRequest, jwtSecret string, exp time.Duration) (string, error)

	// CRUD behind the auth gate:
	CreateUser(req models.RegisterRequest) (*models.User, error)
	GetUser(id uint) (*models.User, error)
	UpdateUser(id uint, req models.UpdateUserRequest) (*models.User, error)
	// DeleteUser returns the record it removed so the handler can echo
	// it back; DELETE responds with the deleted user, not an empty body.
	DeleteUser(id uint) (*models.User, error)
	// ListUsers applies sort/page rules and builds the pagination
	// envelope. basePath is the request path the page URLs point back to.
	ListUsers(basePath string, q models.ListUsersQuery) (*models.PagedUsers, error)
}

// userService depends on the repository plus optional redis cache and
// redis logger; both may be nil and everything degrades to no-ops.
type userService struct {
	repo repositories.UserRepository
	rdb  *redis.Client
	log  *redislog.Logger
}

// NewUserService constructs a service with all dependencies injected.
func NewUserService(repo repositories.UserRepository, rdb *redis.Client, rlog *redislog.Logger) UserService {
	return &userService{repo: repo, rdb: rdb, log: rlog}
}

// userCacheTTL is how long a cached user stays in Redis before expiring.
const userCacheTTL = 10 * time.Minute

func (s *userService) cacheKeyUser(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// cacheSet stores the user JSON under its id key, best-effort.
func (s *userService) cacheSet(u *models.User) {
	if s.rdb == nil {
		return
	}
	if b, _ := json.Marshal(u); len(b) > 0 {
		_ = s.rdb.Set(context.Background(), s.cacheKeyUser(u.ID), b, userCacheTTL).Err()
	}
}

// cacheDel drops a user's cache entry, best-effort.
func (s *userService) cacheDel(id uint) {
	if s.rdb == nil {
		return
	}
	_ = s.rdb.Del(context.Background(), s.cacheKeyUser(id)).Err()
}

// checkUnique enforces username/email uniqueness ahead of a write. The
// store's unique index on username still backstops races; this check
// exists to return a clean conflict instead of a raw driver error.
func (s *userService) checkUnique(username, email string) error {
	if username != "" {
		if _, err := s.repo.FindByUsername(username); err == nil {
			if s.log != nil {
				s.log.Warn("username conflict", map[string]string{"username": username})
			}
			return core.ErrUsernameTaken
		}
	}
	if email != "" {
		if _, err := s.repo.FindByEmail(email); err == nil {
			if s.log != nil {
				s.log.Warn("email conflict", map[string]string{"email": email})
			}
			return core.ErrEmailTaken
		}
	}
	return nil
}

// Register creates a new user: uniqueness checks, password hash, insert,
// cache warm.
func (s *userService) Register(req models.RegisterRequest) (*models.User, error) {
	if err := s.checkUnique(req.Username, req.Email); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		if s.log != nil {
			s.log.Error("register hash error", map[string]string{"username": req.Username, "err": err.Error()})
		}
		return nil, err
	}

	u := &models.User{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	}
	if err := s.repo.Create(u); err != nil {
		if s.log != nil {
			s.log.Error("register db create error", map[string]string{"username": req.Username, "err": err.Error()})
		}
		return nil, err
	}

	// Warm the cache so the first read of the new user is a HIT.
	s.cacheSet(u)
	if s.log != nil {
		s.log.Info("register success", map[string]string{"user_id": fmt.Sprint(u.ID), "username": u.Username})
	}
	return u, nil
}

// Login validates credentials and issues a signed JWT. Unknown username
// and wrong password produce the same error, by intent.
func (s *userService) Login(req models.LoginRequest, jwtSecret string, exp time.Duration) (string, error) {
	u, err := s.repo.FindByUsername(req.Username)
	if err != nil {
		if s.log != nil {
			s.log.Warn("login user not found", map[string]string{"username": req.Username})
		}
		return "", core.ErrInvalidCredentials
	}
	if !utils.CheckPassword(u.Password, req.Password) {
		if s.log != nil {
			s.log.Warn("login wrong password", map[string]string{"username": req.Username})
		}
		return "", core.ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub": u.ID,
		"exp": time.Now().Add(exp).Unix(),
		"iat": time.Now().Unix(),
		"usr": u.Username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		if s.log != nil {
			s.log.Error("login token sign error", map[string]string{"username": u.Username, "err": err.Error()})
		}
		return "", err
	}

	if s.log != nil {
		s.log.Info("login success", map[string]string{"user_id": fmt.Sprint(u.ID), "username": u.Username})
	}
	return signed, nil
}

// CreateUser is the admin-style create; same semantics as Register.
func (s *userService) CreateUser(req models.RegisterRequest) (*models.User, error) {
	return s.Register(req)
}

// GetUser returns a user, preferring the Redis cache and falling back
// to the database.
func (s *userService) GetUser(id uint) (*models.User, error) {
	if s.rdb != nil {
		ctx := context.Background()
		key := s.cacheKeyUser(id)
		val, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			var u models.User
			if json.Unmarshal([]byte(val), &u) == nil {
				if s.log != nil {
					s.log.Info("cache HIT", map[string]string{"key": key})
				}
				return &u, nil
			}
			// Corrupt cache entry; fall through to the DB.
			if s.log != nil {
				s.log.Warn("cache unmarshal failed", map[string]string{"key": key})
			}
		} else if err != redis.Nil {
			if s.log != nil {
				s.log.Error("cache GET error", map[string]string{"key": key, "err": err.Error()})
			}
		}
	}

	u, err := s.repo.FindByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	s.cacheSet(u)
	return u, nil
}

// UpdateUser applies a partial update: only supplied fields change. A
// supplied password is re-hashed; changed username/email re-check
// uniqueness; the cache entry is replaced.
func (s *userService) UpdateUser(id uint, req models.UpdateUserRequest) (*models.User, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}

	if req.Username != nil && *req.Username != u.Username {
		if err := s.checkUnique(*req.Username, ""); err != nil {
			return nil, err
		}
		u.Username = *req.Username
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil && *req.Email != u.Email {
		if err := s.checkUnique("", *req.Email); err != nil {
			return nil, err
		}
		u.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			if s.log != nil {
				s.log.Error("update hash error", map[string]string{"user_id": fmt.Sprint(id), "err": err.Error()})
			}
			return nil, err
		}
		u.Password = hash
	}

	if err := s.repo.Update(u); err != nil {
		if s.log != nil {
			s.log.Error("update db error", map[string]string{"user_id": fmt.Sprint(id), "err": err.Error()})
		}
		return nil, err
	}

	s.cacheDel(id)
	s.cacheSet(u)
	if s.log != nil {
		s.log.Info("update success", map[string]string{"user_id": fmt.Sprint(id)})
	}
	return u, nil
}

// DeleteUser removes a user and returns the record that was removed.
func (s *userService) DeleteUser(id uint) (*models.User, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	if err := s.repo.Delete(id); err != nil {
		if repositories.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		if s.log != nil {
			s.log.Error("delete db error", map[string]string{"user_id": fmt.Sprint(id), "err": err.Error()})
		}
		return nil, err
	}

	s.cacheDel(id)
	if s.log != nil {
		s.log.Info("delete success", map[string]string{"user_id": fmt.Sprint(id)})
	}
	return u, nil
}

// ListUsers normalizes the query (allow-listed sort field, clamped
// page), fetches one page of the total ordering, serializes it and
// wraps it in the pagination envelope. Never fails on bad query values;
// they fall back to defaults.
func (s *userService) ListUsers(basePath string, q models.ListUsersQuery) (*models.PagedUsers, error) {
	sortBy := core.NormalizeSortField(q.SortBy)
	page := core.NormalizePage(q.Page)
	offset := (page - 1) * core.PerPage

	items, total, err := s.repo.List(sortBy, q.Descending, offset, core.PerPage)
	if err != nil {
		if s.log != nil {
			s.log.Error("list db error", map[string]string{"err": err.Error()})
		}
		return nil, err
	}

	last := core.LastPage(total, core.PerPage)
	return &models.PagedUsers{
		Data:         models.PublicAll(items),
		Total:        total,
		PerPage:      core.PerPage,
		CurrentPage:  page,
		FirstPageURL: core.PageURL(basePath, sortBy, q.Descending, 1),
		PrevPageURL:  core.PrevPageURL(basePath, sortBy, q.Descending, page),
		NextPageURL:  core.NextPageURL(basePath, sortBy, q.Descending, page, last),
		LastPageURL:  core.PageURL(basePath, sortBy, q.Descending, last),
	}, nil
}
