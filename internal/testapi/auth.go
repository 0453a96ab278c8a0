package testapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/crypto/bcrypt"

	"pricehawk/internal/model"
)

// SeedUser registers an account without going through the HTTP handler.
func (s *Server) SeedUser(email string, password string, name string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[email] = user{name: name, password: hash}
}

func (s *Server) mintToken(email string) string {
	token, err := jwt.NewBuilder().
		Subject(email).
		IssuedAt(time.Now()).
		Expiration(time.Now().Add(24 * time.Hour)).
		Build()
	if err != nil {
		panic(err)
	}
	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, s.key))
	if err != nil {
		panic(err)
	}
	return string(signed)
}

func (s *Server) userForBearer(r *http.Request) (string, model.User, bool) {
	lt := r.Header.Get("Authorization")
	if !strings.HasPrefix(lt, "Bearer ") {
		return "", model.User{}, false
	}
	lt = strings.TrimPrefix(lt, "Bearer ")
	token, err := jwt.Parse([]byte(lt), jwt.WithKey(jwa.HS256, s.key), jwt.WithValidate(true))
	if err != nil {
		return "", model.User{}, false
	}
	email := token.Subject()

	s.mu.Lock()
	u, ok := s.users[email]
	s.mu.Unlock()
	if !ok {
		return "", model.User{}, false
	}
	return email, model.User{Email: email, Name: u.name}, true
}

func (s *Server) authRegister() http.HandlerFunc {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Email == "" || req.Password == "" {
			s.writeError(w, "Email and password required", http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		_, exists := s.users[req.Email]
		s.mu.Unlock()
		if exists {
			s.writeError(w, "User already exists", http.StatusBadRequest)
			return
		}
		s.SeedUser(req.Email, req.Password, "")
		s.writeJSON(w, map[string]string{"message": "User registered successfully"}, http.StatusCreated)
	}
}

func (s *Server) authLogin() http.HandlerFunc {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	type response struct {
		AccessToken string     `json:"access_token"`
		User        model.User `json:"user"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		u, ok := s.users[req.Email]
		s.mu.Unlock()
		if !ok || bcrypt.CompareHashAndPassword(u.password, []byte(req.Password)) != nil {
			s.writeError(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		s.writeJSON(w, response{
			AccessToken: s.mintToken(req.Email),
			User:        model.User{Email: req.Email, Name: u.name},
		}, http.StatusOK)
	}
}

func (s *Server) authVerify() http.HandlerFunc {
	type response struct {
		Valid bool       `json:"valid"`
		User  model.User `json:"user"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		_, u, ok := s.userForBearer(r)
		if !ok {
			s.writeError(w, "Invalid token", http.StatusUnauthorized)
			return
		}
		s.writeJSON(w, response{Valid: true, User: u}, http.StatusOK)
	}
}

func (s *Server) authMw(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, _, ok := s.userForBearer(r); !ok {
			s.writeError(w, "Invalid token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
