package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/radioctl/internal/browser"
	"github.com/muurk/radioctl/internal/config"
	"github.com/muurk/radioctl/internal/console"
	"github.com/muurk/radioctl/internal/creds"
	"github.com/muurk/radioctl/internal/discovery"
	"github.com/muurk/radioctl/internal/netcheck"
	"github.com/muurk/radioctl/internal/notify"
	"github.com/muurk/radioctl/internal/radio"
	"github.com/muurk/radioctl/internal/retry"
	"github.com/muurk/radioctl/internal/ui"
)

// Command flags
var (
	configPath     string
	verbose        bool
	headless       bool
	timeoutSeconds int
	targetNetwork  string
	noNotify       bool
	assumeYes      bool

	discoverTimeout int
	configForce     bool
)

func init() {
	// Common flags for all commands (persistent on root)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: OS config directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show the navigation trace after the run")
	rootCmd.PersistentFlags().BoolVar(&headless, "headless", true, "Run the browser headless (--headless=false shows the window)")
	rootCmd.PersistentFlags().IntVar(&timeoutSeconds, "timeout", 0, "Page wait timeout in seconds (overrides config)")
	rootCmd.PersistentFlags().StringVar(&targetNetwork, "network", "", "Expected Wi-Fi network name (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noNotify, "no-notify", false, "Skip the desktop notification for this run")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Skip confirmation prompts")

	// Add subcommands
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(onCmd)
	rootCmd.AddCommand(offCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(credsCmd)

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	credsCmd.AddCommand(credsSetCmd)
	credsCmd.AddCommand(credsClearCmd)
}

// Exit codes let wrapping scripts distinguish environment preconditions
// from real automation failures.
const (
	exitOK           = 0
	exitFailure      = 1
	exitNotConnected = 2
	exitVPN          = 3
)

// verdictError carries a pipeline verdict out of a command so main can
// apply the documented exit code. The cause, when present, is the
// diagnostic detail behind the verdict.
type verdictError struct {
	verdict string
	code    int
	cause   error
}

func (e *verdictError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.verdict, console.GetShortErrorMessage(e.cause))
	}
	return e.verdict
}

func (e *verdictError) Unwrap() error { return e.cause }

func statusExitCode(s radio.Status) int {
	switch s {
	case radio.StatusRadioOn, radio.StatusRadioOff:
		return exitOK
	case radio.StatusNotConnected:
		return exitNotConnected
	case radio.StatusVPNConnected:
		return exitVPN
	default:
		return exitFailure
	}
}

func resultExitCode(r radio.Result) int {
	switch r {
	case radio.ResultNotConnected:
		return exitNotConnected
	case radio.ResultVPNConnected:
		return exitVPN
	default:
		if r.Succeeded() {
			return exitOK
		}
		return exitFailure
	}
}

// flagChanged reports whether the user set the named persistent flag, so
// a flag default does not clobber a configured value.
func flagChanged(name string) bool {
	return rootCmd.PersistentFlags().Changed(name)
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if flagChanged("headless") {
		cfg.Headless = headless
	}
	if flagChanged("timeout") {
		cfg.TimeoutSeconds = timeoutSeconds
	}
	if flagChanged("network") {
		cfg.TargetNetwork = targetNetwork
	}
	if noNotify {
		cfg.EnableNotifications = false
	}

	// Overrides can invalidate a config that loaded cleanly.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// promptingSource reads credentials from the OS keychain and falls back
// to a terminal prompt when none are stored. A prompted pair is saved
// only when the user agrees; a declined pair lives for the login step
// and is gone when the run ends.
type promptingSource struct {
	store *creds.Store
}

func (s promptingSource) Credentials() (string, string, error) {
	username, password, err := s.store.Credentials()
	if err == nil {
		return username, password, nil
	}
	if !errors.Is(err, creds.ErrNotStored) {
		return "", "", err
	}

	fmt.Println()
	username, password, err = ui.PromptCredentials()
	if err != nil {
		return "", "", err
	}

	answer, err := ui.PromptLine("Save to the OS keychain for next time? (y/N)")
	if err == nil && (strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")) {
		if saveErr := s.store.Save(username, password); saveErr != nil {
			fmt.Printf("Could not store credentials: %v\n", saveErr)
		} else {
			fmt.Printf("Credentials stored in the OS keychain (service %q).\n", s.store.Service)
		}
	} else {
		fmt.Println("Tip: run 'radioctl creds set' to store them later.")
	}
	fmt.Println()
	return username, password, nil
}

// buildController wires the console pipeline from the loaded config. With
// --verbose every session operation is appended to the trace.
func buildController(cfg *config.Config, trace *ui.Trace, step console.StepFunc) *console.Controller {
	var factory console.Factory = console.DriverFactory{
		Options: browser.Options{
			Headless: cfg.Headless,
			Timeout:  cfg.Timeout(),
		},
	}
	if verbose {
		factory = console.ObservedFactory{
			Inner: factory,
			Observer: func(op, target, outcome string) {
				if target == "" {
					trace.Add("%-13s %s", op, outcome)
					return
				}
				trace.Add("%-13s %s  %s", op, target, outcome)
			},
		}
	}

	// Holding a window open only helps when there is a window to look at.
	hold := time.Duration(0)
	if !cfg.Headless {
		hold = cfg.DebugHold()
	}

	source := promptingSource{store: creds.NewStore(cfg.ServiceName)}

	return console.NewController(factory, netcheck.New(cfg.TargetNetwork), source, console.Options{
		ConsoleURL: cfg.RouterURL,
		AdminURL:   cfg.EffectiveAdminURL(),
		Retry: retry.Policy{
			MaxAttempts: cfg.RetryAttempts,
			Delay:       cfg.RetryDelay(),
			Step:        cfg.RetryStep(),
		},
		HoldOnFailure: hold,
		Step:          step,
	})
}

// Step names follow the pipeline stage order; a status run stops after
// the inspection stage.
var (
	statusSteps = []string{"Preflight checks", "Browser session", "Console login", "Radio status"}
	toggleSteps = []string{"Preflight checks", "Browser session", "Console login", "Radio status", "Settings submit", "Verification"}
)

// stageProgress adapts pipeline stage notifications to the numbered step
// list the runner renders. Stages the pipeline never entered are
// reported skipped when the run succeeds.
type stageProgress struct {
	onStep  ui.StepCallback
	total   int
	current int
}

func newStageProgress(onStep ui.StepCallback, total int) *stageProgress {
	return &stageProgress{onStep: onStep, total: total}
}

// Enter marks the previous stage complete and the new stage running.
func (p *stageProgress) Enter(stage console.Stage) {
	n := int(stage) + 1
	if n < 1 || n > p.total {
		return
	}
	if p.current >= 1 && p.current < n {
		p.onStep(p.current, "", ui.StepComplete, "")
	}
	p.onStep(n, "", ui.StepRunning, "")
	p.current = n
}

// Finish closes out the step list with the run's verdict.
func (p *stageProgress) Finish(ok bool, note string) {
	if p.current < 1 {
		return
	}
	if !ok {
		p.onStep(p.current, "", ui.StepFailed, note)
		return
	}
	p.onStep(p.current, "", ui.StepComplete, note)
	for n := p.current + 1; n <= p.total; n++ {
		p.onStep(n, "", ui.StepSkipped, note)
	}
}

// newPipelineRunner builds the runner and trace a pipeline command
// renders through.
func newPipelineRunner(cfg *config.Config, title, command string, steps []string) (*ui.Runner, *ui.Trace) {
	params := map[string]string{
		"Console": cfg.RouterURL,
		"Session": sessionMode(cfg),
	}
	if cfg.TargetNetwork != "" {
		params["Network"] = cfg.TargetNetwork
	}

	runner := ui.NewRunner(ui.RunnerConfig{
		Title:      title,
		Command:    command,
		Params:     params,
		TotalSteps: len(steps),
		StepNames:  steps,
		Verbose:    verbose,
	})
	// A retried run can log a long trail; cap the printed box at the
	// most recent events.
	trace := ui.NewTrace().SetMaxLines(40)
	runner.SetTrace(trace)
	return runner, trace
}

func sessionMode(cfg *config.Config) string {
	if cfg.Headless {
		return "headless"
	}
	return "visible browser"
}

// statusCmd reads the radio state without changing anything
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Read the current 2.4GHz radio state",
	Long: `Read the current state of the access point's 2.4GHz radio.

The command drives the web admin console through a browser session: it
passes the self-signed-certificate warning, logs in, opens the advanced
settings page, and reads the wireless status row. It never submits a
settings form.

Exit codes:
  0  radio state was read (RADIO_ON or RADIO_OFF)
  1  the console could not be driven to an answer
  2  this machine is not connected to the router's network
  3  an active VPN would misroute the console connection`,
	Example: `  # Read the radio state
  radioctl status

  # Watch the browser do the reading
  radioctl status --headless=false --verbose`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	runner, trace := newPipelineRunner(cfg, "Radio Status", "radioctl status", statusSteps)
	notifier := notify.New(cfg.EnableNotifications)
	ctx := context.Background()

	var status radio.Status
	_, runErr := runner.RunWithResult(ctx, func(onStep ui.StepCallback) (map[string]string, error) {
		progress := newStageProgress(onStep, len(statusSteps))
		ctl := buildController(cfg, trace, progress.Enter)

		st, err := ctl.Status(ctx)
		status = st
		progress.Finish(st.IsRadioState(), statusNote(err))
		if !st.IsRadioState() {
			return nil, &verdictError{verdict: st.String(), code: statusExitCode(st), cause: err}
		}
		return map[string]string{
			"Status":  st.String(),
			"Console": cfg.RouterURL,
		}, nil
	})

	notifier.Status(status)
	return runErr
}

func statusNote(err error) string {
	if err != nil {
		return console.GetShortErrorMessage(err)
	}
	return ""
}

// onCmd turns the radio on
var onCmd = &cobra.Command{
	Use:   "on",
	Short: "Turn the 2.4GHz radio on",
	Long: `Turn the access point's 2.4GHz radio on.

The command logs into the web admin console, checks the current state,
and drives the wireless settings form when a change is needed. The form
is submitted exactly once; the result is confirmed by re-reading the
status page. A radio that is already on is reported as ALREADY_ON with
no write at all.

Exit codes:
  0  radio is on (changed now or already on)
  1  the change could not be made or confirmed
  2  this machine is not connected to the router's network
  3  an active VPN would misroute the console connection`,
	Example: `  # Turn the radio on
  radioctl on

  # Turn it on without a desktop notification
  radioctl on --no-notify`,
	RunE: runOn,
}

// offCmd turns the radio off
var offCmd = &cobra.Command{
	Use:   "off",
	Short: "Turn the 2.4GHz radio off",
	Long: `Turn the access point's 2.4GHz radio off.

Every device on the 2.4GHz band loses connectivity the moment the
change applies, so the command asks for confirmation first (skip with
--yes). The settings form is submitted exactly once; if the console
does not confirm the change the command reports UNEXPECTED_FAILURE
rather than submitting again.

Exit codes:
  0  radio is off (changed now or already off)
  1  the change could not be made or confirmed
  2  this machine is not connected to the router's network
  3  an active VPN would misroute the console connection`,
	Example: `  # Turn the radio off (asks for confirmation)
  radioctl off

  # Non-interactive, for scripts and schedulers
  radioctl off --yes`,
	RunE: runOff,
}

func runOn(cmd *cobra.Command, args []string) error {
	return runToggle(cmd, radio.DesiredOn)
}

func runOff(cmd *cobra.Command, args []string) error {
	return runToggle(cmd, radio.DesiredOff)
}

func runToggle(cmd *cobra.Command, desired radio.Desired) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Turning the radio off cuts every 2.4GHz client; make sure that is
	// what the user wants before opening anything.
	if desired == radio.DesiredOff && !assumeYes {
		if !ui.RadioOffConfirmation() {
			return nil
		}
	}

	title, command := "Radio On", "radioctl on"
	if desired == radio.DesiredOff {
		title, command = "Radio Off", "radioctl off"
	}

	runner, trace := newPipelineRunner(cfg, title, command, toggleSteps)
	notifier := notify.New(cfg.EnableNotifications)
	ctx := context.Background()

	var result radio.Result
	_, runErr := runner.RunWithResult(ctx, func(onStep ui.StepCallback) (map[string]string, error) {
		progress := newStageProgress(onStep, len(toggleSteps))
		ctl := buildController(cfg, trace, progress.Enter)

		res, err := ctl.Set(ctx, desired)
		result = res
		progress.Finish(res.Succeeded(), toggleNote(res, err))
		if !res.Succeeded() {
			return nil, &verdictError{verdict: res.String(), code: resultExitCode(res), cause: err}
		}
		return map[string]string{
			"Result": res.String(),
			"Radio":  desired.Status().String(),
		}, nil
	})

	notifier.ToggleResult(desired, result)
	return runErr
}

func toggleNote(result radio.Result, err error) string {
	switch result {
	case radio.ResultAlreadyOn:
		return "already on"
	case radio.ResultAlreadyOff:
		return "already off"
	}
	if err != nil {
		return console.GetShortErrorMessage(err)
	}
	return ""
}

// discoverCmd lists admin consoles found on the local network
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find admin consoles on the local network",
	Long: `Scan the local network for router admin consoles using mDNS/DNS-SD.

The scan listens for HTTP and HTTPS service announcements and keeps the
ones whose names look like a router console. Results are advisory: many
routers never announce themselves, and the stock console address works
regardless from inside the router's own network.`,
	Example: `  # Scan for 10 seconds (default)
  radioctl discover

  # Quick scan on a small network
  radioctl discover --timeout 3`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().IntVar(&discoverTimeout, "timeout", 10, "Scan timeout in seconds")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	ui.PrintCommandHeader(
		"Console Discovery",
		"radioctl discover",
		map[string]string{
			"Services": "_http._tcp, _https._tcp",
			"Timeout":  fmt.Sprintf("%ds", discoverTimeout),
		},
	)

	ui.PrintPleaseWait("Scanning for admin consoles", fmt.Sprintf("up to %d seconds", discoverTimeout))

	consoles, err := discovery.Scan(time.Duration(discoverTimeout) * time.Second)
	if err != nil {
		ui.PrintFailure("Discovery failed", err, []string{
			"Check you are connected to a network",
			"Some networks filter multicast DNS entirely",
		})
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(consoles) == 0 {
		ui.PrintWarning("No admin consoles found", map[string]string{
			"Scanned": fmt.Sprintf("%ds", discoverTimeout),
			"Note":    "Many routers never announce themselves over mDNS",
		})
		fmt.Println()
		fmt.Println("The configured router_url usually works regardless from inside")
		fmt.Println("the router's own network; try a longer --timeout on slow networks.")
		return nil
	}

	fmt.Printf("Found %d console(s):\n\n", len(consoles))

	for i, c := range consoles {
		fmt.Printf("%d. %s\n", i+1, c.DisplayName())
		fmt.Printf("   URL: %s\n", c.URL())
		fmt.Printf("   IP:  %s:%d\n", c.IP, c.Port)
		if len(c.Metadata) > 0 {
			fmt.Printf("   TXT: %v\n", c.Metadata)
		}
		fmt.Println()
	}

	fmt.Println("Set router_url in the config file to use a discovered console.")

	return nil
}

// configCmd groups the configuration file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	Long: `Manage the radioctl configuration file.

The file lives in the OS config directory (override with --config) and
holds the console address, timeouts, and retry policy. Credentials are
never stored here; they live in the OS keychain.`,
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Print the configuration the next run would use.

The output is the config file merged with defaults and any flag
overrides. Credentials never appear here; see 'radioctl creds set'.`,
	Example: `  # Show the effective configuration
  radioctl config show

  # Show what a flag override would change
  radioctl config show --timeout 30`,
	RunE: runConfigShow,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := configPath
	if path == "" {
		if p, perr := config.GetConfigPath(); perr == nil {
			path = p
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Printf("# Effective configuration (%s)\n", path)
	fmt.Print(string(data))
	return nil
}

// configInitCmd writes the default configuration file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write a configuration file populated with the defaults.

An existing file is left alone unless --force is given. The defaults
work from inside the router's network with no editing; set
target_network to enable the network-identity check.`,
	Example: `  # Write the default config to the OS config directory
  radioctl config init

  # Overwrite an existing file
  radioctl config init --force`,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	path := configPath
	if path == "" {
		p, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if err := config.Default().Save(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	ui.PrintSuccess("Configuration written", map[string]string{
		"Path": path,
	})
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  - Set target_network to your Wi-Fi name to enable the network check")
	fmt.Println("  - Run 'radioctl creds set' to store the console credentials")
	return nil
}

// credsCmd groups the keychain credential commands
var credsCmd = &cobra.Command{
	Use:   "creds",
	Short: "Manage console credentials in the OS keychain",
	Long: `Manage the admin console credentials.

Credentials are stored in the operating system keychain: Keychain on
macOS, Secret Service on Linux, Credential Manager on Windows. They are
never written to the config file or to logs. With nothing stored, the
pipeline commands prompt for credentials at login time instead.`,
}

// credsSetCmd prompts for and stores the credential pair
var credsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store console credentials",
	Long: `Prompt for the console username and password and store them in
the OS keychain under the configured service name. The password prompt
does not echo.`,
	Example: `  # Store credentials interactively
  radioctl creds set`,
	RunE: runCredsSet,
}

func runCredsSet(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	username, password, err := ui.PromptCredentials()
	if err != nil {
		return err
	}

	store := creds.NewStore(cfg.ServiceName)
	if err := store.Save(username, password); err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}

	ui.PrintSuccess("Credentials stored", map[string]string{
		"Service": cfg.ServiceName,
		"Backend": "OS keychain",
	})
	return nil
}

// credsClearCmd removes the stored credential pair
var credsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove stored console credentials",
	Long: `Remove the console credentials from the OS keychain. Safe to run
when nothing is stored.`,
	Example: `  # Remove stored credentials
  radioctl creds clear`,
	RunE: runCredsClear,
}

func runCredsClear(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := creds.NewStore(cfg.ServiceName)
	if err := store.Clear(); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}

	ui.PrintSuccess("Credentials removed", map[string]string{
		"Service": cfg.ServiceName,
	})
	return nil
}
