package exampleop

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/provenid/oplogout/example/server/storage"
	httphelper "github.com/provenid/oplogout/pkg/http"
)

var loginTmpl, _ = template.New("login").Parse(`
	<!DOCTYPE html>
	<html>
		<head>
			<meta charset="UTF-8">
			<title>Login</title>
		</head>
		<body style="display: flex; align-items: center; justify-content: center; height: 100vh;">
			<form method="POST" action="/login/" style="height: 200px; width: 200px;">

				<div>
					<label for="username">Username:</label>
					<input id="username" name="username" style="width: 100%">
				</div>

				<div>
					<label for="password">Password:</label>
					<input id="password" name="password" type="password" style="width: 100%">
				</div>

				<p style="color:red; min-height: 1rem;">{{.Error}}</p>

				<button type="submit">Login</button>
			</form>
		</body>
	</html>`)

var loggedInTmpl, _ = template.New("loggedin").Parse(`
	<!DOCTYPE html>
	<html>
		<head>
			<meta charset="UTF-8">
			<title>Signed in</title>
		</head>
		<body style="display: flex; align-items: center; justify-content: center; height: 100vh;">
			<form method="POST" action="/oauth/v2/end_session" style="width: 400px;">

				<p>You are signed in. Your ID Token:</p>
				<textarea readonly rows="8" style="width: 100%">{{.IDToken}}</textarea>

				<input type="hidden" name="id_token_hint" value="{{.IDToken}}">
				<input type="hidden" name="client_id" value="{{.ClientID}}">
				<input type="hidden" name="state" value="example-state">

				<button type="submit">Logout</button>
			</form>
		</body>
	</html>`)

type login struct {
	storage  *storage.Storage
	cookie   *httphelper.CookieHandler
	issuer   string
	clientID string
	router   chi.Router
}

func NewLogin(store *storage.Storage, issuer, clientID string, cookie *httphelper.CookieHandler) *login {
	l := &login{
		storage:  store,
		cookie:   cookie,
		issuer:   issuer,
		clientID: clientID,
	}
	l.createRouter()
	return l
}

func (l *login) createRouter() {
	l.router = chi.NewRouter()
	l.router.Get("/", l.loginHandler)
	l.router.Post("/", l.checkLoginHandler)
}

func (l *login) loginHandler(w http.ResponseWriter, r *http.Request) {
	renderLogin(w, nil)
}

func renderLogin(w http.ResponseWriter, err error) {
	var errMsg string
	if err != nil {
		errMsg = err.Error()
	}
	data := &struct {
		Error string
	}{
		Error: errMsg,
	}
	err = loginTmpl.Execute(w, data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (l *login) checkLoginHandler(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, fmt.Sprintf("cannot parse form:%s", err), http.StatusInternalServerError)
		return
	}
	sessionID, err := l.storage.Login(r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		renderLogin(w, err)
		return
	}
	if err := l.cookie.SetCookie(w, sessionCookieName, sessionID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	// the issued token can later be presented to end_session as id_token_hint
	token, err := l.storage.IssueIDToken(l.issuer, l.clientID, sessionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	data := &struct {
		IDToken  string
		ClientID string
	}{
		IDToken:  token,
		ClientID: l.clientID,
	}
	if err := loggedInTmpl.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
