package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pgrterm/pgr/internal"
	"github.com/pgrterm/pgr/internal/constants"
	"github.com/pgrterm/pgr/internal/dev"
	"github.com/pgrterm/pgr/internal/fileio"
	"github.com/pgrterm/pgr/internal/help"
	"github.com/pgrterm/pgr/internal/keymap"
	"github.com/pgrterm/pgr/internal/style"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	// Version is public so users can optionally specify or override the version
	// at build time by passing in ldflags, e.g.
	//   go build -ldflags "-X github.com/pgrterm/pgr/cmd.Version=vX.Y.Z"
	Version = ""
)

// termGetSize is swapped out in tests
var termGetSize = term.GetSize

type arg struct {
	cliShort, cfgFileEnvVar, description, defaultString string
	isBool, defaultIfBool                               bool
}

var (
	rootNameToArg = map[string]arg{
		"alt-screen": {
			cfgFileEnvVar: "alt-screen",
			description:   `Page inside the terminal's alternate screen, leaving scrollback untouched. Default true`,
			isBool:        true,
			defaultIfBool: true,
		},
		"help": {
			cliShort:    "h",
			description: `Print usage`,
		},
		"highlight-color": {
			cfgFileEnvVar: "highlight-color",
			description:   `Color of search matches, an ANSI color number or a hex color like #ff0000`,
			defaultString: constants.DefaultHighlightColor,
		},
	}

	description = fmt.Sprintf(`pgr %s

pgr is a terminal pager with incremental search. It pages through FILE, or standard input when FILE is - or
absent. Every flag can also be set with a PGR_ environment variable, e.g. PGR_HIGHLIGHT_COLOR=4

%s`,
		getVersion(),
		help.MakeHelp(keymap.DefaultKeyMap(), style.NewStyles(constants.DefaultHighlightColor).KeyHelp),
	)
)

// Execute executes the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	rootCmd := &cobra.Command{
		Use:   "pgr [FILE]",
		Short: "pgr: terminal pager",
		Long:  description,
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v, rootNameToArg)
		},
		RunE:          mainEntrypoint,
		Version:       getVersion(),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cliLong := "help"
	rootCmd.PersistentFlags().BoolP(cliLong, rootNameToArg[cliLong].cliShort, rootNameToArg[cliLong].defaultIfBool, rootNameToArg[cliLong].description)

	for _, cliLong = range []string{
		"alt-screen",
		"highlight-color",
	} {
		c := rootNameToArg[cliLong]
		if c.isBool {
			rootCmd.PersistentFlags().BoolP(cliLong, c.cliShort, c.defaultIfBool, c.description)
		} else {
			rootCmd.PersistentFlags().StringP(cliLong, c.cliShort, c.defaultString, c.description)
		}
	}
	rootCmd.SetVersionTemplate(`{{printf "pgr %s\n" .Version}}`)
	rootCmd.Flags().BoolP("version", "v", false, "Show pgr version")
	return rootCmd
}

func initConfig(cmd *cobra.Command, v *viper.Viper, nameToArg map[string]arg) error {
	// bind viper to env vars, e.g. PGR_HIGHLIGHT_COLOR for highlight-color
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return bindFlags(cmd, v, nameToArg)
}

func bindFlags(cmd *cobra.Command, v *viper.Viper, nameToArg map[string]arg) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		viperName := nameToArg[f.Name].cfgFileEnvVar
		if viperName == "" || err != nil {
			return
		}

		// Apply the env var value to the flag when the flag is not manually specified
		if !f.Changed && v.IsSet(viperName) {
			val := v.Get(viperName)
			if setErr := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); setErr != nil {
				err = fmt.Errorf("setting flag %s from environment: %w", f.Name, setErr)
			}
		}
	})
	return err
}

func mainEntrypoint(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	contents, err := fileio.ReadInput(path, cmd.InOrStdin())
	if errors.Is(err, fileio.ErrEmptyInput) {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), constants.EmptyInputMessage)
		return err
	}
	if err != nil {
		return err
	}

	width, height, err := termGetSize(fileDescriptor(cmd.OutOrStdout()))
	if err != nil {
		// not a terminal, so just pass the contents through
		dev.Debug(fmt.Sprintf("failed to get terminal size: %v", err))
		if _, err = fmt.Fprintln(cmd.ErrOrStderr(), constants.DimensionErrorMessage); err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), contents)
		return err
	}

	if dev.Enabled() {
		style.DebugColors()
	}

	config := getConfig(cmd, contents, width, height)
	program := tea.NewProgram(internal.InitialModel(config), programOptions(cmd, path, config)...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error on pgr startup: %w", err)
	}
	return nil
}

func getVersion() string {
	if Version != "" {
		return Version
	}
	return versioninfo.Short()
}

// fileDescriptor returns the descriptor behind w, or -1 if w isn't a file
func fileDescriptor(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		return int(f.Fd())
	}
	return -1
}

func getAltScreen(cmd *cobra.Command) bool {
	return cmd.Flags().Lookup("alt-screen").Value.String() == "true"
}

func getHighlightColor(cmd *cobra.Command) string {
	return cmd.Flags().Lookup("highlight-color").Value.String()
}

func getConfig(cmd *cobra.Command, contents string, width, height int) internal.Config {
	return internal.Config{
		KeyMap:         keymap.DefaultKeyMap(),
		Contents:       contents,
		Width:          width,
		Height:         height,
		HighlightColor: getHighlightColor(cmd),
		AltScreen:      getAltScreen(cmd),
		Version:        getVersion(),
	}
}

func programOptions(cmd *cobra.Command, path string, config internal.Config) []tea.ProgramOption {
	options := []tea.ProgramOption{tea.WithOutput(cmd.OutOrStdout())}
	if path == "" || path == fileio.StdinPath {
		// stdin holds the contents, so read keys from the terminal instead
		options = append(options, tea.WithInputTTY())
	}
	if config.AltScreen {
		options = append(options, tea.WithAltScreen())
	}
	return options
}
