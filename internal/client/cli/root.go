package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/handylink/internal/buildinfo"
	"github.com/dmitrijs2005/handylink/internal/client/config"
	"github.com/dmitrijs2005/handylink/internal/client/services"
	"github.com/dmitrijs2005/handylink/internal/client/validation"
	"github.com/spf13/cobra"
)

// runtime carries the App from the root's pre-run hook to the
// subcommands.
type runtime struct {
	app   *App
	close func() error
}

func (rt *runtime) Close() error {
	if rt.close == nil {
		return nil
	}
	err := rt.close()
	rt.close = nil
	return err
}

// newRootCmd builds the handylink command tree. build is called once the
// configuration is loaded.
func newRootCmd(build AppFactory) (*cobra.Command, *runtime) {
	rt := &runtime{}

	root := &cobra.Command{
		Use:           "handylink",
		Short:         "HandyLink marketplace client",
		Long:          "handylink signs you in to the HandyLink service marketplace and manages jobs, providers, payments, reviews and notifications.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if rt.app != nil {
				return nil
			}
			cfg, err := config.LoadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			app, closeFn, err := build(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			rt.app, rt.close = app, closeFn
			return nil
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.Version = buildinfo.Version
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// no App needed
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	})

	root.AddCommand(commands(rt)...)
	root.AddCommand(newReplCmd(rt))
	return root, rt
}

// commands returns the action commands. The REPL builds a fresh set per
// line so flag values never leak between lines.
func commands(rt *runtime) []*cobra.Command {
	return []*cobra.Command{
		newLoginCmd(rt),
		newRegisterCmd(rt),
		newVerifyCmd(rt),
		newLogoutCmd(rt),
		newStatusCmd(rt),
		newRefreshCmd(rt),
		newForgotPasswordCmd(rt),
		newResetPasswordCmd(rt),
		newProfileCmd(rt),
		newJobsCmd(rt),
		newProvidersCmd(rt),
		newPaymentsCmd(rt),
		newReviewsCmd(rt),
		newNotificationsCmd(rt),
	}
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	root, rt := newRootCmd(NewAppFromConfig)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	if cerr := rt.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(errOut, "Error:", errorText(err))
		return 1
	}
	return 0
}

// errorText is the user-facing text for err.
func errorText(err error) string {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return verrs.Error()
	}
	var ae *services.AuthError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}
