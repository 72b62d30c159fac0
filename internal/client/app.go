package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/MKhiriev/go-user-service/internal/adapter"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/models"
)

type command func(ctx context.Context, args []string) (any, error)

// App runs one subcommand per invocation.
type App struct {
	users    adapter.UserServiceAdapter
	args     []string
	out      io.Writer
	commands map[string]command

	logger *logger.Logger
}

func NewApp(users adapter.UserServiceAdapter, args []string, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		users:  users,
		args:   args,
		out:    out,
		logger: logger,
	}
	a.commands = map[string]command{
		"login":  a.login,
		"create": a.create,
		"get":    a.get,
		"list":   a.list,
		"find":   a.find,
		"update": a.update,
		"delete": a.delete,
		"bulk":   a.bulk,
	}
	return a
}

func (a *App) Run(ctx context.Context) error {
	if len(a.args) == 0 {
		return fmt.Errorf("%w: expected one of %v", ErrNoCommand, a.commandNames())
	}

	name, args := a.args[0], a.args[1:]
	cmd, ok := a.commands[name]
	if !ok {
		return fmt.Errorf("%w %q: expected one of %v", ErrUnknownCommand, name, a.commandNames())
	}

	a.logger.Debug().Str("command", name).Msg("running command")
	result, err := cmd(ctx, args)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func (a *App) commandNames() []string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (a *App) login(ctx context.Context, args []string) (any, error) {
	var creds models.Credentials
	fs := newFlagSet("login")
	fs.StringVar(&creds.Email, "email", "", "user email")
	fs.StringVar(&creds.Password, "password", "", "user password")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return a.users.Login(ctx, creds)
}

func (a *App) create(ctx context.Context, args []string) (any, error) {
	var req models.CreateUserRequest
	fs := newFlagSet("create")
	fs.StringVar(&req.Name, "name", "", "user name")
	fs.StringVar(&req.Email, "email", "", "user email")
	fs.StringVar(&req.Password, "password", "", "user password")
	fs.StringVar(&req.PasswordSecond, "password-second", "", "password confirmation")
	fs.StringVar(&req.Cellphone, "cellphone", "", "user cellphone")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return a.users.CreateUser(ctx, req)
}

func (a *App) get(ctx context.Context, args []string) (any, error) {
	id, err := parseID(args)
	if err != nil {
		return nil, err
	}
	return a.users.GetUser(ctx, id)
}

func (a *App) list(ctx context.Context, _ []string) (any, error) {
	return a.users.GetAllUsers(ctx)
}

func (a *App) find(ctx context.Context, args []string) (any, error) {
	var filter models.UserFilter
	fs := newFlagSet("find")
	fs.BoolFunc("active", "match active (true) or deleted (false) users", func(v string) error {
		active, err := strconv.ParseBool(v)
		filter.Active = &active
		return err
	})
	fs.Func("name", "case-insensitive name substring", func(v string) error {
		filter.Name = &v
		return nil
	})
	fs.Func("login-after", "RFC3339 lower bound of a login time", timeFlag(&filter.LoginAfter))
	fs.Func("login-before", "RFC3339 upper bound of a login time", timeFlag(&filter.LoginBefore))
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return a.users.FindUsers(ctx, filter)
}

func (a *App) update(ctx context.Context, args []string) (any, error) {
	var update models.UserUpdate
	fs := newFlagSet("update")
	fs.Func("name", "new name", stringFlag(&update.Name))
	fs.Func("password", "new password", stringFlag(&update.Password))
	fs.Func("cellphone", "new cellphone", stringFlag(&update.Cellphone))
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	id, err := parseID(fs.Args())
	if err != nil {
		return nil, err
	}
	return a.users.UpdateUser(ctx, id, update)
}

func (a *App) delete(ctx context.Context, args []string) (any, error) {
	id, err := parseID(args)
	if err != nil {
		return nil, err
	}
	return a.users.DeleteUser(ctx, id)
}

// bulk reads a JSON array of users from the file named by -file, or from
// stdin when the flag is omitted.
func (a *App) bulk(ctx context.Context, args []string) (any, error) {
	var path string
	fs := newFlagSet("bulk")
	fs.StringVar(&path, "file", "", "JSON file with an array of users")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open bulk file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var users []models.BulkUserInput
	if err := json.NewDecoder(r).Decode(&users); err != nil {
		return nil, fmt.Errorf("decode bulk users: %w", err)
	}

	return a.users.BulkCreateUsers(ctx, users)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: user id", ErrMissingArgs)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid user id %q", args[0])
	}
	return id, nil
}

func stringFlag(dst **string) func(string) error {
	return func(v string) error {
		*dst = &v
		return nil
	}
}

func timeFlag(dst **time.Time) func(string) error {
	return func(v string) error {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return err
		}
		*dst = &t
		return nil
	}
}
