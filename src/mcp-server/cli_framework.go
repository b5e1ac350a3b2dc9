// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/template"

	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/internal/cost"
	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/logger"
	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

// cliHelpData holds the values substituted into the embedded cli_help.md template.
type cliHelpData struct {
	ExeName              string
	InstructionsFlagName string
	ConfigFlagName       string
	HelpFlagName         string
}

// CLIFramework integrates Cobra CLI with MCP server capabilities.
//
// Key features:
//   - Dynamic executable naming based on the actual binary path
//   - [Gopls-style] --instructions flag printing the instructions sent to MCP clients
//   - Settings file support via --config flag or MCP_COST_CONFIG_FILE environment variable
//   - Default MCP server startup when no arguments are provided
//   - query and check subcommands working on the local cost report
//   - Graceful shutdown handling with signal interception
//
// [Gopls-style]: https://tip.golang.org/gopls/features/mcp#instructions-to-the-model
type CLIFramework struct {
	configFile    string
	embed         templates.EmbedFS
	version       string
	resources     []server.ServerResource
	prompts       []server.ServerPrompt
	instructions  string
	populateCache bool
}

// NewCLIFramework creates a new CLI framework instance.
//
// Tools are not taken from deps: the get-cost handler depends on the
// resolved configuration and is built when the server starts. Resources and
// prompts in deps are served in addition to the defaults.
//
// Parameters:
//   - configFile: Default settings file path, overridable with --config.
//     Empty means MCP_COST_CONFIG_FILE or built-in defaults.
//   - deps: Embed, Version, Instructions, Resources, Prompts and PopulateCache are used.
//
// Example usage:
//
//	framework := NewCLIFramework("", ServerDependencies{
//	    Embed:        templates.MagicEmbed,
//	    Version:      "1.0.0",
//	    Instructions: instructions,
//	})
//	if err := framework.BuildRootCommand().Execute(); err != nil {
//	    ReportFatal(os.Stderr, err)
//	    os.Exit(1)
//	}
func NewCLIFramework(configFile string, deps ServerDependencies) *CLIFramework {
	embed := deps.Embed
	if embed == nil {
		embed = templates.MagicEmbed
	}
	return &CLIFramework{
		configFile:    configFile,
		embed:         embed,
		version:       deps.Version,
		resources:     deps.Resources,
		prompts:       deps.Prompts,
		instructions:  deps.Instructions,
		populateCache: deps.PopulateCache,
	}
}

// BuildRootCommand creates the root Cobra command.
//
// Command behavior:
//   - With --instructions: prints the server instructions and exits
//   - With a subcommand: runs query or check
//   - Without arguments: starts the MCP server on stdio
//
// Errors are not printed by Cobra; the caller reports them with ReportFatal
// so configuration failures keep their JSON-RPC shape.
//
// It panics if the CLI help template cannot be rendered, since that is a
// build defect rather than a runtime condition.
func (cf *CLIFramework) BuildRootCommand() *cobra.Command {
	exeName := posix.GetExecutableName()

	rootCmd := &cobra.Command{
		Use:           exeName,
		Short:         "Cloud cost summaries for MCP clients",
		Version:       cf.version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Registered early so its name can be rendered into the help template.
	rootCmd.Flags().BoolP("help", "h", false, "help for "+exeName)

	showInstructions := new(bool)
	rootCmd.PersistentFlags().BoolVar(showInstructions, "instructions", false, "print the instructions sent to MCP clients")
	rootCmd.PersistentFlags().StringVar(&cf.configFile, "config", cf.configFile, "path to settings file (.json, .yaml, .yml, .toml)")

	instructionsFlagName, configFlagName, helpFlagName := extractFlagNames(rootCmd)

	longDesc, examples, err := cf.loadAndExecuteCLIHelpTemplate(exeName, instructionsFlagName, configFlagName, helpFlagName)
	if err != nil {
		panic(fmt.Sprintf("failed to process CLI help template: %v", err))
	}
	rootCmd.Long = longDesc
	rootCmd.Example = examples

	rootCmd.RunE = cf.createRootCommandRunE(showInstructions)
	rootCmd.AddCommand(cf.newQueryCommand(), cf.newCheckCommand())

	return rootCmd
}

// loadAndExecuteCLIHelpTemplate renders cli_help.md and splits it into the
// Long description and the Examples section.
func (cf *CLIFramework) loadAndExecuteCLIHelpTemplate(exeName, instructionsFlagName, configFlagName, helpFlagName string) (longDesc, examples string, err error) {
	templateBytes, err := cf.embed.ReadFile(templates.CLIHelpFile)
	if err != nil {
		return "", "", fmt.Errorf("failed to load CLI help template: %w", err)
	}

	data := cliHelpData{
		ExeName:              exeName,
		InstructionsFlagName: instructionsFlagName,
		ConfigFlagName:       configFlagName,
		HelpFlagName:         helpFlagName,
	}

	tmpl, err := template.New("cli_help").Parse(string(templateBytes))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse CLI help template: %w", err)
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", "", fmt.Errorf("failed to execute CLI help template: %w", err)
	}

	return cf.parseTemplateResult(result.String())
}

// parseTemplateResult splits rendered help text at the "## Examples" line.
// Content before the line is the Long description, content after it the
// Examples. Both \n and \r\n line endings are handled.
func (cf *CLIFramework) parseTemplateResult(templateResult string) (longDesc, examples string, err error) {
	const examplesMarker = "## Examples"

	markerIndex := strings.Index(templateResult, examplesMarker)
	if markerIndex == -1 {
		return "", "", fmt.Errorf("CLI help template has invalid format - missing '%s' section", examplesMarker)
	}

	lineStart := strings.LastIndex(templateResult[:markerIndex], "\n") + 1

	lineEnd := strings.Index(templateResult[markerIndex:], "\n")
	if lineEnd == -1 {
		lineEnd = len(templateResult)
	} else {
		lineEnd += markerIndex
	}

	longDesc = strings.TrimSpace(templateResult[:lineStart])
	examples = strings.TrimSpace(templateResult[lineEnd:])

	return longDesc, examples, nil
}

// extractFlagNames returns the "--" prefixed names of the instructions, config
// and help flags, falling back to the defaults when a flag is missing.
func extractFlagNames(rootCmd *cobra.Command) (instructionsFlagName, configFlagName, helpFlagName string) {
	instructionsFlagName = "--instructions"
	if f := rootCmd.PersistentFlags().Lookup("instructions"); f != nil {
		instructionsFlagName = "--" + f.Name
	}

	configFlagName = "--config"
	if f := rootCmd.PersistentFlags().Lookup("config"); f != nil {
		configFlagName = "--" + f.Name
	}

	helpFlagName = "--help"
	if f := rootCmd.Flags().Lookup("help"); f != nil {
		helpFlagName = "--" + f.Name
	}

	return instructionsFlagName, configFlagName, helpFlagName
}

// createRootCommandRunE prints instructions when requested and otherwise
// starts the MCP server.
func (cf *CLIFramework) createRootCommandRunE(showInstructions *bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if *showInstructions {
			return cf.printInstructions(cmd.OutOrStdout())
		}
		return cf.startMCPServer(cmd)
	}
}

// printInstructions writes the pre-generated server instructions, the same
// text MCP clients receive during initialization.
func (cf *CLIFramework) printInstructions(w io.Writer) error {
	_, err := io.WriteString(w, cf.instructions)
	return err
}

// buildServer wires the get-cost handler for config into a new MCP server.
// The handler and its loader are created here, once per server.
func (cf *CLIFramework) buildServer(config *Config, log logger.Logger) (*server.MCPServer, error) {
	handler := NewCostQueryHandler(cost.NewLoader(config.DataFile, log))

	builder := NewServerBuilder().
		WithConfig(config).
		WithEmbed(cf.embed).
		WithVersion(cf.version).
		WithTools(createTools(handler)...).
		WithDefaultResources().
		WithResources(cf.resources...).
		WithDefaultPrompts().
		WithPrompts(cf.prompts...).
		WithInstructions(cf.instructions)

	if cf.populateCache {
		builder = builder.WithPopulate()
	}

	return builder.Build()
}

// startMCPServer resolves the configuration, builds the server and serves
// MCP over the command's stdin and stdout until EOF or a signal.
//
// Returns:
//   - *ConfigError: CONFIG is missing, invalid or has no license
//   - nil: When the server shuts down because of SIGINT or SIGTERM
//   - error: Settings file, build or transport failures
func (cf *CLIFramework) startMCPServer(cmd *cobra.Command) error {
	config, err := resolveConfig(cf.configFile, true)
	if err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			return err
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewMCPLogger(cmd.ErrOrStderr(), config.Log.Silent)

	mcpServer, err := cf.buildServer(config, log)
	if err != nil {
		return fmt.Errorf("failed to build MCP server: %w", err)
	}

	stdioServer := server.NewStdioServer(mcpServer)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case sig := <-sigChan:
			log.Info("Received signal, shutting down", map[string]any{"signal": sig.String()})
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Info("Cloud Cost MCP Server running on stdio", map[string]any{
		"version":  cf.version,
		"dataFile": config.DataFile,
	})

	if err := stdioServer.Listen(ctx, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
