// Package authviews renders the login and registration pages.
package authviews

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"
)

// LoginPage renders the sign-in form. next is carried through so a redirect
// back to the originally requested page survives the round trip; username
// repopulates after a failed attempt.
func LoginPage(next, username string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/login"
		if next != "" {
			action = "/login?next=" + templ.EscapeString(url.QueryEscape(next))
		}
		_, err := fmt.Fprintf(w,
			`<h1>Log In</h1>`+
				`<form class="report" method="post" action="%s">`+
				`<label for="username">Username</label><input type="text" id="username" name="username" value="%s">`+
				`<label for="password">Password</label><input type="password" id="password" name="password">`+
				`<p><button class="btn" type="submit">Log In</button></p>`+
				`</form>`+
				`<p>New here? <a href="/register">Create an account</a>.</p>`,
			action, templ.EscapeString(username))
		return err
	})
}

// RegisterPage renders the account creation form. clubName and username
// repopulate after a rejected submission.
func RegisterPage(clubName, username string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<h1>Register</h1>`+
				`<form class="report" method="post" action="/register">`+
				`<label for="club_name">Club Name</label><input type="text" id="club_name" name="club_name" value="%s">`+
				`<label for="username">Username</label><input type="text" id="username" name="username" value="%s">`+
				`<label for="password">Password</label><input type="password" id="password" name="password">`+
				`<p><button class="btn" type="submit">Create Account</button></p>`+
				`</form>`+
				`<p>Already registered? <a href="/login">Log in</a>.</p>`,
			templ.EscapeString(clubName), templ.EscapeString(username))
		return err
	})
}
