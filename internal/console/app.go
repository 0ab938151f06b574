package console

import (
	"bufio"
	"fmt"
	"io"

	"goflix/internal/models"
	"goflix/internal/services/account"
	"goflix/internal/services/catalog"
	"goflix/internal/services/session"

	"github.com/sirupsen/logrus"
)

// App drives the interactive menus. It holds no business rules: every
// mutation goes through the services, and the only state kept here is the
// current session token.
type App struct {
	catalog  *catalog.Service
	accounts *account.Service
	sessions *session.Service
	logger   *logrus.Logger

	in    *bufio.Scanner
	out   io.Writer
	token string
}

// NewApp wires the console against the three services.
func NewApp(cat *catalog.Service, acc *account.Service, sess *session.Service, in io.Reader, out io.Writer, logger *logrus.Logger) *App {
	return &App{
		catalog:  cat,
		accounts: acc,
		sessions: sess,
		logger:   logger,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run loops on the welcome menu until the user exits or input ends.
func (a *App) Run() error {
	fmt.Fprintln(a.out, "=== Goflix ===")
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "1) Login")
		fmt.Fprintln(a.out, "2) Register")
		fmt.Fprintln(a.out, "0) Exit")
		choice, ok := a.readInt("Choice")
		if !ok {
			return nil
		}
		switch choice {
		case 1:
			a.login()
		case 2:
			a.register()
		case 0:
			fmt.Fprintln(a.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid option.")
		}
	}
}

func (a *App) login() {
	email, ok := a.readLine("Email")
	if !ok {
		return
	}
	password, ok := a.readLine("Password")
	if !ok {
		return
	}
	sess, err := a.sessions.Login(email, password)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid email or password.")
		return
	}
	a.token = sess.Token

	user, ok := a.sessions.GetLoggedInUser(a.token)
	if !ok {
		a.logout()
		return
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Name)
	if user.Admin {
		a.adminMenu(user)
	} else {
		a.userMenu(user)
	}
	a.logout()
}

func (a *App) logout() {
	if a.token == "" {
		return
	}
	a.sessions.Logout(a.token)
	a.token = ""
}

func (a *App) register() {
	name, ok := a.readLine("Name")
	if !ok || name == "" {
		fmt.Fprintln(a.out, "Name must not be empty.")
		return
	}
	email, ok := a.readLine("Email")
	if !ok || email == "" {
		fmt.Fprintln(a.out, "Email must not be empty.")
		return
	}
	password, ok := a.readLine("Password (at least 8 characters)")
	if !ok || len(password) < 8 {
		fmt.Fprintln(a.out, "Password must have at least 8 characters.")
		return
	}
	user := models.NewUser(name, email, password)
	if err := a.accounts.AddUser(user); err != nil {
		fmt.Fprintln(a.out, "This email address is already registered.")
		return
	}
	fmt.Fprintln(a.out, "Account created. You can log in now.")
}
