// internal/api/auth/handlers.go
package auth

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/analysishub/analysishub/internal/api/authz"
	"github.com/analysishub/analysishub/internal/api/flash"
	"github.com/analysishub/analysishub/internal/config"
	"github.com/analysishub/analysishub/internal/db"
	dbgen "github.com/analysishub/analysishub/internal/db/generated"
	"github.com/analysishub/analysishub/internal/ratelimit"
	"github.com/analysishub/analysishub/internal/templates"
	"github.com/analysishub/analysishub/internal/templates/components/authviews"
)

const minPasswordLength = 6

var (
	appConfig    *config.Config
	database     *db.DB
	queries      *dbgen.Queries
	loginLimiter *ratelimit.Limiter
	// Smooths bursts across all clients before the per-user limiter runs.
	globalLoginRate = rate.NewLimiter(rate.Limit(20), 40)
)

var errUsernameTaken = errors.New("username already taken")

// Init wires the package to its configuration and database access. Must be
// called before any handler or session helper is used.
func Init(cfg *config.Config, d *db.DB) {
	appConfig = cfg
	database = d
	queries = d.Queries
	loginLimiter = ratelimit.New(nil)
}

// HandleLoginPage renders the sign-in form. Authenticated users are sent to
// the report picker.
func HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	if authz.UserFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	templates.RenderPage(w, r, "Log In", authviews.LoginPage(nextTarget(r), ""))
}

// HandleLogin processes a sign-in attempt.
func HandleLogin(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if authz.UserFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	next := nextTarget(r)

	if username == "" || password == "" {
		renderLogin(w, r, next, username, "Both username and password are required.")
		return
	}

	if !globalLoginRate.Allow() {
		http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
		return
	}

	ip := ratelimit.ClientIP(r)
	if result := loginLimiter.CheckLogin(username, ip); !result.Allowed {
		logger.Warn().Str("reason", result.Reason).Msg("Login attempt rate limited")
		renderLogin(w, r, next, username, "Too many failed attempts. Please try again later.")
		return
	}

	user, err := queries.GetUserByUsername(r.Context(), username)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Error().Err(err).Msg("Failed to look up user")
		}
		loginLimiter.RecordFailure(username, ip)
		renderLogin(w, r, next, username, "Invalid username or password.")
		return
	}

	if !VerifyPassword(user.PasswordHash, password) {
		loginLimiter.RecordFailure(username, ip)
		renderLogin(w, r, next, username, "Invalid username or password.")
		return
	}

	loginLimiter.RecordSuccess(username)

	if err := CreateSession(w, user.ID); err != nil {
		logger.Error().Err(err).Msg("Failed to create session")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	logger.Info().Int64("user_id", user.ID).Msg("User logged in")
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// HandleRegisterPage renders the account creation form.
func HandleRegisterPage(w http.ResponseWriter, r *http.Request) {
	if authz.UserFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	templates.RenderPage(w, r, "Register", authviews.RegisterPage("", ""))
}

// HandleRegister creates a user account, creating the club on first use.
// Club names and usernames are both matched case-insensitively.
func HandleRegister(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if authz.UserFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	clubName := strings.TrimSpace(r.PostFormValue("club_name"))
	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	var errs []string
	if clubName == "" {
		errs = append(errs, "Club Name is required.")
	}
	if username == "" {
		errs = append(errs, "Username is required.")
	}
	if password == "" {
		errs = append(errs, "Password is required.")
	} else if len(password) < minPasswordLength {
		errs = append(errs, fmt.Sprintf("Password must be at least %d characters long.", minPasswordLength))
	}
	if len(errs) > 0 {
		renderRegister(w, r, clubName, username, errs...)
		return
	}

	hash, err := HashPassword(password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Club resolution and user creation commit together, so a rejected
	// username never leaves behind a club nobody belongs to.
	var user dbgen.User
	var club dbgen.Club
	err = database.RunInTx(r.Context(), func(tx *db.DB) error {
		var err error
		club, err = tx.Queries.GetClubByName(r.Context(), clubName)
		if errors.Is(err, sql.ErrNoRows) {
			club, err = tx.Queries.CreateClub(r.Context(), clubName)
		}
		if err != nil {
			return fmt.Errorf("resolving club: %w", err)
		}

		if _, err := tx.Queries.GetUserByUsername(r.Context(), username); err == nil {
			return errUsernameTaken
		} else if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("checking username: %w", err)
		}

		user, err = tx.Queries.CreateUser(r.Context(), dbgen.CreateUserParams{
			Username:     username,
			PasswordHash: hash,
			ClubID:       club.ID,
		})
		if err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		return nil
	})
	if errors.Is(err, errUsernameTaken) {
		renderRegister(w, r, clubName, username,
			fmt.Sprintf("Username %q already exists. Please choose a different one.", username))
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("Failed to register account")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	logger.Info().Int64("user_id", user.ID).Int64("club_id", club.ID).Msg("Account registered")
	flash.Add(w, r, flash.CategorySuccess,
		fmt.Sprintf("Account created for %s at %s! Please log in.", username, clubName))
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// HandleLogout ends the session and returns to the login page.
func HandleLogout(w http.ResponseWriter, r *http.Request) {
	ClearSession(w, r)
	flash.Add(w, r, flash.CategoryInfo, "You have been logged out.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func renderLogin(w http.ResponseWriter, r *http.Request, next, username string, messages ...string) {
	extra := make([]flash.Message, 0, len(messages))
	for _, m := range messages {
		extra = append(extra, flash.Message{Category: flash.CategoryDanger, Text: m})
	}
	templates.RenderPage(w, r, "Log In", authviews.LoginPage(next, username), extra...)
}

func renderRegister(w http.ResponseWriter, r *http.Request, clubName, username string, messages ...string) {
	extra := make([]flash.Message, 0, len(messages))
	for _, m := range messages {
		extra = append(extra, flash.Message{Category: flash.CategoryDanger, Text: m})
	}
	templates.RenderPage(w, r, "Register", authviews.RegisterPage(clubName, username), extra...)
}

// nextTarget returns a safe post-login redirect target. Only local paths are
// honored so the parameter cannot bounce users to another site.
func nextTarget(r *http.Request) string {
	next := r.URL.Query().Get("next")
	if next == "" {
		next = r.PostFormValue("next")
	}
	// // and /\ both reach another host once the browser normalizes them.
	if next == "" || !strings.HasPrefix(next, "/") ||
		strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	if _, err := url.Parse(next); err != nil {
		return "/"
	}
	return next
}
