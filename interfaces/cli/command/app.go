// Package command implements seoctl, the operator command line for the SEO
// back-office API.
package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"
)

var Version = "dev"

const defaultSessionFile = ".seoctl-session"

var errNotLoggedIn = errors.New("not logged in: run `seoctl login` or set SEOCTL_SESSION")

func App() *cli.App {
	return &cli.App{
		Name:    "seoctl",
		Usage:   "SEO back-office operator tool",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Usage:   "API base URL",
				EnvVars: []string{"SEOCTL_SERVER"},
				Value:   "http://localhost:8080",
			},
			&cli.StringFlag{
				Name:    "session",
				Usage:   "admin session payload (overrides --session-file)",
				EnvVars: []string{"SEOCTL_SESSION"},
			},
			&cli.StringFlag{
				Name:    "session-file",
				Usage:   "file holding the session saved by login",
				EnvVars: []string{"SEOCTL_SESSION_FILE"},
				Value:   defaultSessionFile,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "request timeout",
				Value: 60 * time.Second,
			},
		},
		Commands: []*cli.Command{
			loginCommand(),
			tablesCommand(),
			templateCommand(),
			exportCommand(),
			importCommand(),
			snapshotCommand(),
		},
	}
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Authenticate and save the session",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "pseudo",
				Aliases:  []string{"u"},
				Usage:    "pseudo or e-mail",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "print",
				Usage: "print the session instead of saving it",
			},
		},
		Action: func(c *cli.Context) error {
			password, err := promptPassword(c.App.Reader, c.App.ErrWriter)
			if err != nil {
				return err
			}

			ctx, cancel := requestContext(c)
			defer cancel()

			res, err := NewClient(c.String("server"), "").Login(ctx, c.String("pseudo"), password)
			if err != nil {
				return err
			}

			if c.Bool("print") {
				fmt.Fprintln(c.App.Writer, res.Session)
				return nil
			}
			path := c.String("session-file")
			if err := os.WriteFile(path, []byte(res.Session), 0600); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			if res.Admin != nil {
				fmt.Fprintf(c.App.Writer, "logged in as admin %d, ", res.Admin.ID)
			}
			fmt.Fprintf(c.App.Writer, "session saved to %s\n", path)
			return nil
		},
	}
}

func tablesCommand() *cli.Command {
	return &cli.Command{
		Name:  "tables",
		Usage: "List the editable tables",
		Action: func(c *cli.Context) error {
			client, err := authedClient(c)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(c)
			defer cancel()

			tables, err := client.Tables(ctx)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "TABLE\tLABEL\tID FIELD\tEXPORT FILE\tREQUIRED")
			for _, t := range tables {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", t.Table, t.Label, t.IDField, t.ExportFile, strings.Join(t.Required, ","))
			}
			return tw.Flush()
		},
	}
}

func templateCommand() *cli.Command {
	return &cli.Command{
		Name:      "template",
		Usage:     "Print the import template of a table",
		ArgsUsage: "TABLE",
		Action: func(c *cli.Context) error {
			table, err := requireArg(c, "TABLE")
			if err != nil {
				return err
			}
			client, err := authedClient(c)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(c)
			defer cancel()

			tpl, err := client.Template(ctx, table)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(tpl.Example, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, string(out))
			fmt.Fprintf(c.App.ErrWriter, "required: %s\n%s\n", strings.Join(tpl.Required, ", "), tpl.Rule)
			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Download a table as JSON",
		ArgsUsage: "TABLE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output file (\"-\" for stdout, default: server file name)",
			},
		},
		Action: func(c *cli.Context) error {
			table, err := requireArg(c, "TABLE")
			if err != nil {
				return err
			}
			client, err := authedClient(c)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(c)
			defer cancel()

			file, err := client.Export(ctx, table)
			if err != nil {
				return err
			}

			out := c.String("out")
			if out == "-" {
				_, err := c.App.Writer.Write(file.Content)
				return err
			}
			if out == "" {
				out = file.Filename
			}
			if err := os.WriteFile(out, file.Content, 0644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(c.App.Writer, "exported %s to %s (%d bytes)\n", table, out, len(file.Content))
			return nil
		},
	}
}

func importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Insert or update rows from a JSON array file",
		ArgsUsage: "TABLE FILE",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "import-timeout",
				Usage: "deadline for the import request, 0 waits for the server",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("usage: seoctl import TABLE FILE", 2)
			}
			table, path := c.Args().Get(0), c.Args().Get(1)

			payload, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}
			client, err := authedClient(c)
			if err != nil {
				return err
			}
			ctx, cancel := importContext(c)
			defer cancel()

			res, err := client.Import(ctx, table, payload)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "total=%d successes=%d failures=%d\n", res.Total, res.Successes, res.Failures)
			if res.Failures > 0 {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

func snapshotCommand() *cli.Command {
	return &cli.Command{
		Name:  "snapshot",
		Usage: "Export every table to storage now",
		Action: func(c *cli.Context) error {
			client, err := authedClient(c)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(c)
			defer cancel()

			res, err := client.Snapshot(ctx)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "run %s\n", res.RunID)
			fmt.Fprintln(tw, "TABLE\tROWS\tLOCATION")
			for _, e := range res.Entries {
				location := e.URL
				if e.Error != "" {
					location = "error: " + e.Error
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\n", e.Table, e.Rows, location)
			}
			return tw.Flush()
		},
	}
}

func authedClient(c *cli.Context) (*Client, error) {
	session := strings.TrimSpace(c.String("session"))
	if session == "" {
		raw, err := os.ReadFile(c.String("session-file"))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, errNotLoggedIn
			}
			return nil, fmt.Errorf("read session: %w", err)
		}
		session = strings.TrimSpace(string(raw))
	}
	if session == "" {
		return nil, errNotLoggedIn
	}
	return NewClient(c.String("server"), session), nil
}

func requireArg(c *cli.Context, name string) (string, error) {
	if c.NArg() != 1 {
		return "", cli.Exit(fmt.Sprintf("usage: seoctl %s %s", c.Command.Name, name), 2)
	}
	return c.Args().First(), nil
}

func requestContext(c *cli.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context, c.Duration("timeout"))
}

// importContext ignores --timeout; an import runs every row server-side in one request.
func importContext(c *cli.Context) (context.Context, context.CancelFunc) {
	if d := c.Duration("import-timeout"); d > 0 {
		return context.WithTimeout(c.Context, d)
	}
	return context.WithCancel(c.Context)
}
