package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/agileboot/agileboot-cli/internal/config"
	"github.com/agileboot/agileboot-cli/internal/logger"
	"github.com/agileboot/agileboot-cli/internal/service/session"
)

// ExecuteAuthLoginCommand logs in with a password and saves the token to the configuration file.
// The username is prompted for when neither the flag nor the configuration provides it.
func ExecuteAuthLoginCommand(ctx context.Context, cfg *config.Config, username string) {
	logger.Info(ctx, "Starting authentication process")

	s := newSessionService(ctx, cfg)

	token, err := s.Login(ctx, username)
	if err != nil {
		logger.Fatalf(ctx, "Authentication failed: %v", err)
	}

	user := token.CurrentUser.UserInfo

	name := user.NickName
	if name == "" {
		name = user.Username
	}

	if name != "" {
		logger.Infof(ctx, "Welcome, %s!", name)
	}

	logger.Info(ctx, "Authentication complete! Try 'auth whoami' or 'routes' next.")
}

// ExecuteWhoAmICommand prints the current user and the state of the configured token.
func ExecuteWhoAmICommand(ctx context.Context, cfg *config.Config) {
	mustHaveAuthToken(ctx, cfg)

	s := newSessionService(ctx, cfg)

	current, err := s.CurrentUser(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to get current user: %v", err)
	}

	printCurrentUser(os.Stdout, current, time.Now())
}

// printCurrentUser writes the user profile followed by the token lifetime relative to now.
func printCurrentUser(out io.Writer, current *session.CurrentUser, now time.Time) {
	info := current.User.UserInfo

	user := info.Username
	if info.NickName != "" && info.NickName != info.Username {
		user = fmt.Sprintf("%s (%s)", info.Username, info.NickName)
	}

	printField(out, "User", user)
	printField(out, "Department", info.DeptName)
	printField(out, "Post", info.PostName)
	printField(out, "Role", joinNonEmpty(info.RoleName, current.User.RoleKey))
	printField(out, "Email", info.Email)
	printField(out, "Phone", info.PhoneNumber)

	if info.LoginDate != nil && !info.LoginDate.IsZero() {
		lastLogin := humanize.RelTime(info.LoginDate.Time, now, "ago", "from now")
		if info.LoginIP != "" {
			lastLogin += " from " + info.LoginIP
		}

		printField(out, "Last login", lastLogin)
	}

	if len(current.User.Permissions) > 0 {
		printField(out, "Permissions", strings.Join(current.User.Permissions, ", "))
	}

	printField(out, "Token", describeToken(current, now))
}

func describeToken(current *session.CurrentUser, now time.Time) string {
	switch {
	case current.Claims == nil:
		return "not a JWT, lifetime unknown"
	case current.Claims.ExpiresAt == nil:
		return "no expiry claim, the session is tracked by the backend"
	case current.Claims.IsExpired(now):
		return "expired " + humanize.RelTime(*current.Claims.ExpiresAt, now, "ago", "from now")
	default:
		return "expires " + humanize.RelTime(*current.Claims.ExpiresAt, now, "ago", "from now")
	}
}

func printField(out io.Writer, name, value string) {
	if value == "" {
		return
	}

	fmt.Fprintf(out, "%-12s %s\n", name+":", value)
}

func joinNonEmpty(first, second string) string {
	switch {
	case first == "":
		return second
	case second == "" || first == second:
		return first
	default:
		return fmt.Sprintf("%s (%s)", first, second)
	}
}
