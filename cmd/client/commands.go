package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/clinical-records/internal/adapter"
	"github.com/MKhiriev/clinical-records/internal/validators"
	"github.com/MKhiriev/clinical-records/models"
	"github.com/spf13/cobra"
)

type cli struct {
	adapter   adapter.ServerAdapter
	tokens    tokenStore
	buildInfo models.AppBuildInfo
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "clinical-records",
		Short:         "Command-line client of the clinical-records API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			tokens, err := c.tokens.Load()
			if err != nil {
				return err
			}
			c.adapter.SetTokens(tokens)
			return nil
		},
	}

	root.AddCommand(
		c.registerCmd(),
		c.loginCmd(),
		c.logoutCmd(),
		c.refreshCmd(),
		c.versionCmd(),
		c.doctorCmd(),
		c.patientCmd(),
		c.clinicalStoryCmd(),
		c.allergyCmd(),
	)

	return root
}

// ---- auth ----

func (c *cli) registerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a doctor account from a JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var registration models.DoctorRegistration
			if err := readInput(cmd, &registration); err != nil {
				return err
			}
			doctor, err := c.adapter.Register(cmd.Context(), registration)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), doctor)
		},
	}
	addDataFlag(cmd)
	return cmd
}

func (c *cli) loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the issued tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")

			tokens, err := c.adapter.Login(cmd.Context(), models.Credentials{Username: username, Password: password})
			if err != nil {
				return err
			}
			if err = c.tokens.Save(tokens); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged in")
			return nil
		},
	}
	cmd.Flags().StringP("username", "u", "", "doctor username")
	cmd.Flags().StringP("password", "p", "", "doctor password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the current access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.adapter.Logout(cmd.Context()); err != nil {
				return err
			}
			if err := c.tokens.Save(models.TokenPair{}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func (c *cli) refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Get a new access token with the stored refresh token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tokens, err := c.adapter.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			if err = c.tokens.Save(tokens); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "access token refreshed")
			return nil
		},
	}
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "client: %s\n", c.buildInfo)

			serverVersion, err := c.adapter.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "server: %s\n", serverVersion)
			return nil
		},
	}
}

// ---- resources ----

func (c *cli) doctorCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "doctor", Short: "Read or change doctor accounts"}

	cmd.AddCommand(
		getCmd("get <id>", "Show a doctor", c.adapter.GetDoctor),
		updateCmd("update <id>", "Update your own account", c.adapter.UpdateDoctor),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete your own account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if err = c.adapter.DeleteDoctor(cmd.Context(), id); err != nil {
					return err
				}
				// the server revoked the token together with the account
				if err = c.tokens.Save(models.TokenPair{}); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "doctor deleted")
				return nil
			},
		},
	)
	return cmd
}

func (c *cli) patientCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "pacient", Aliases: []string{"patient"}, Short: "Manage patients"}
	cmd.AddCommand(
		createCmd("create", "Create a patient, allergies may be given inline", c.adapter.CreatePatient),
		getCmd("get <id>", "Show a patient with allergies and clinical stories", c.adapter.GetPatient),
		updateCmd("update <id>", "Update a patient", c.adapter.UpdatePatient),
		deleteCmd("delete <id>", "Delete a patient with its records", "pacient deleted", c.adapter.DeletePatient),
	)
	return cmd
}

func (c *cli) clinicalStoryCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "story", Short: "Manage clinical stories"}
	cmd.AddCommand(
		createCmd("create", "Write a clinical story", c.adapter.CreateClinicalStory),
		getCmd("get <id>", "Show a clinical story", c.adapter.GetClinicalStory),
		updateCmd("update <id>", "Update a story you wrote", c.adapter.UpdateClinicalStory),
		deleteCmd("delete <id>", "Delete a story you wrote", "clinical story deleted", c.adapter.DeleteClinicalStory),
	)
	return cmd
}

func (c *cli) allergyCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "allergy", Short: "Manage patient allergies"}
	cmd.AddCommand(
		createCmd("create", "Attach an allergy to a patient", c.adapter.CreateAllergy),
		getCmd("get <id>", "Show an allergy", c.adapter.GetAllergy),
		deleteCmd("delete <id>", "Delete an allergy", "allergy deleted", c.adapter.DeleteAllergy),
	)
	return cmd
}

func createCmd[In, Out any](use, short string, create func(ctx context.Context, input In) (Out, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var input In
			if err := readInput(cmd, &input); err != nil {
				return err
			}
			created, err := create(cmd.Context(), input)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), created)
		},
	}
	addDataFlag(cmd)
	return cmd
}

func getCmd[Out any](use, short string, get func(ctx context.Context, id int64) (Out, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			found, err := get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), found)
		},
	}
}

func updateCmd[In, Out any](use, short string, update func(ctx context.Context, id int64, input In) (Out, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var input In
			if err = readInput(cmd, &input); err != nil {
				return err
			}
			updated, err := update(cmd.Context(), id, input)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), updated)
		},
	}
	addDataFlag(cmd)
	return cmd
}

func deleteCmd(use, short, done string, remove func(ctx context.Context, id int64) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err = remove(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), done)
			return nil
		},
	}
}

// ---- helpers ----

func addDataFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("data", "d", "", "JSON document; read from stdin when empty")
}

// readInput decodes the JSON document given with --data or on stdin and
// checks it before anything is sent.
func readInput(cmd *cobra.Command, dst any) error {
	var r io.Reader = cmd.InOrStdin()
	if data, _ := cmd.Flags().GetString("data"); data != "" {
		r = strings.NewReader(data)
	}

	return validators.Load(cmd.Context(), validators.NewSchemaValidator(), r, dst)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", raw)
	}
	return id, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// describeError renders field messages of validation failures one per line.
func describeError(err error) string {
	var fields map[string][]string

	var validationErr *validators.ValidationError
	var respErr *adapter.ResponseError
	switch {
	case errors.As(err, &validationErr):
		fields = validationErr.Messages
	case errors.As(err, &respErr) && respErr.Fields() != nil:
		fields = respErr.Fields()
	case errors.As(err, &respErr) && respErr.Message() != "":
		return "error: " + respErr.Message()
	default:
		return "error: " + err.Error()
	}

	var b strings.Builder
	b.WriteString("invalid input:")
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		fmt.Fprintf(&b, "\n  %s: %s", field, strings.Join(fields[field], " "))
	}
	return b.String()
}
