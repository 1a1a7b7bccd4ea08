package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	flag "github.com/spf13/pflag"

	latex2md "github.com/alnah/go-latex2md"
	"github.com/alnah/go-latex2md/internal/assets"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

const programName = "latex2md"

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string
	Short    string
	Type     flagType
	Desc     string
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name       string
	Desc       string
	Flags      []flagDef
	Args       []string // fixed argument values
	TakesFiles bool
}

// completionMeta holds completion hints for flags. Names, types and
// descriptions come from the FlagSets.
type completionMeta struct {
	Values   func() []string
	FileGlob string
	IsDir    bool
}

var flagCompletionMeta = map[string]completionMeta{
	"profile":         {Values: latex2md.Profiles},
	"disable":         {Values: latex2md.StageNames},
	"style":           {Values: func() []string { return append(latex2md.PreviewStyles(), assets.NoStyle) }},
	"highlight-style": {Values: styles.Names},

	"config": {FileGlob: "*.yaml,*.yml"},

	"output":     {IsDir: true},
	"asset-path": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int64", "uint":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case meta.Values != nil:
				fd.Type = flagEnum
				fd.Values = meta.Values()
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the FlagSets the commands parse with.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:       "convert",
			Desc:       "Convert files, directories, or stdin",
			Flags:      extractFlagsFromFlagSet(buildConvertFlagSet(io.Discard, &convertFlags{})),
			TakesFiles: true,
		},
		{
			Name:  "clip",
			Desc:  "Convert the system clipboard in place",
			Flags: extractFlagsFromFlagSet(buildClipFlagSet(io.Discard, &clipFlags{})),
		},
		{
			Name:  "stages",
			Desc:  "Show the stage order of a profile",
			Flags: extractFlagsFromFlagSet(buildStagesFlagSet(io.Discard, &stagesFlags{})),
		},
		{
			Name:  "config",
			Desc:  "Print the effective configuration",
			Flags: extractFlagsFromFlagSet(buildConfigFlagSet(io.Discard, &configFlags{})),
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)},
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
			Args: []string{"convert", "clip", "stages", "config", "completion", "version"},
		},
	}
}

// GenerateCompletion writes the completion script for shell to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var b strings.Builder
	cmds := getCommands()
	switch shell {
	case ShellBash:
		writeBash(&b, cmds)
	case ShellZsh:
		writeZsh(&b, cmds)
	case ShellFish:
		writeFish(&b, cmds)
	case ShellPowerShell:
		writePowerShell(&b, cmds)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: latex2md completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(latex2md completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(latex2md completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    latex2md completion fish > ~/.config/fish/completions/latex2md.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    latex2md completion powershell | Out-String | Invoke-Expression")
}

func commandNames(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

// flagSpellings returns "--long" and "-s" when a shorthand exists.
func flagSpellings(f flagDef) []string {
	out := []string{"--" + f.Long}
	if f.Short != "" {
		out = append(out, "-"+f.Short)
	}
	return out
}

// ---------------------------------------------------------------------------
// bash
// ---------------------------------------------------------------------------

func writeBash(b *strings.Builder, cmds []commandDef) {
	fn := "_" + programName + "_completions"
	fmt.Fprintf(b, "# bash completion for %s\n", programName)
	fmt.Fprintf(b, "%s() {\n", fn)
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", commandNames(cmds))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "    %s)\n", c.Name)
		writeBashCommand(b, c)
		b.WriteString("        ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	fmt.Fprintf(b, "complete -o default -F %s %s\n", fn, programName)
}

func writeBashCommand(b *strings.Builder, c commandDef) {
	if len(c.Args) > 0 {
		fmt.Fprintf(b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(c.Args, " "))
		return
	}
	if len(c.Flags) == 0 {
		return
	}

	b.WriteString("        case \"$prev\" in\n")
	var all []string
	for _, f := range c.Flags {
		spellings := flagSpellings(f)
		all = append(all, spellings...)
		pattern := strings.Join(spellings, "|")
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(b, "        %s) COMPREPLY=($(compgen -W %q -- \"$cur\")); return ;;\n", pattern, strings.Join(f.Values, " "))
		case flagFile:
			fmt.Fprintf(b, "        %s) COMPREPLY=($(compgen -f -- \"$cur\")); return ;;\n", pattern)
		case flagDir:
			fmt.Fprintf(b, "        %s) COMPREPLY=($(compgen -d -- \"$cur\")); return ;;\n", pattern)
		case flagString, flagInt:
			fmt.Fprintf(b, "        %s) return ;;\n", pattern)
		}
	}
	b.WriteString("        esac\n")
	b.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
	fmt.Fprintf(b, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(all, " "))
	if c.TakesFiles {
		b.WriteString("        else\n")
		b.WriteString("            COMPREPLY=($(compgen -f -- \"$cur\"))\n")
	}
	b.WriteString("        fi\n")
}

// ---------------------------------------------------------------------------
// zsh
// ---------------------------------------------------------------------------

func writeZsh(b *strings.Builder, cmds []commandDef) {
	fn := "_" + programName
	fmt.Fprintf(b, "#compdef %s\n\n", programName)
	fmt.Fprintf(b, "%s() {\n", fn)
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${words[2]}\" in\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "    %s)\n", c.Name)
		writeZshCommand(b, c)
		b.WriteString("        ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(b, "%s \"$@\"\n", fn)
}

func writeZshCommand(b *strings.Builder, c commandDef) {
	if len(c.Args) > 0 {
		fmt.Fprintf(b, "        _values 'argument' %s\n", strings.Join(c.Args, " "))
		return
	}
	if len(c.Flags) == 0 && !c.TakesFiles {
		return
	}

	b.WriteString("        _arguments -s \\\n")
	for _, f := range c.Flags {
		desc := "[" + zshEscape(f.Desc) + "]"
		var action string
		switch f.Type {
		case flagBool:
			action = ""
		case flagEnum:
			action = ":value:(" + strings.Join(f.Values, " ") + ")"
		case flagFile:
			action = ":file:_files"
		case flagDir:
			action = ":directory:_files -/"
		default:
			action = ":value:"
		}
		if f.Short != "" {
			fmt.Fprintf(b, "            '(-%s --%s)'{-%s,--%s}'%s%s' \\\n", f.Short, f.Long, f.Short, f.Long, desc, action)
		} else {
			fmt.Fprintf(b, "            '--%s%s%s' \\\n", f.Long, desc, action)
		}
	}
	if c.TakesFiles {
		b.WriteString("            '*:input:_files'\n")
	} else {
		b.WriteString("            && return\n")
	}
}

func zshEscape(s string) string {
	r := strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]", ":", "\\:")
	return r.Replace(s)
}

// ---------------------------------------------------------------------------
// fish
// ---------------------------------------------------------------------------

func writeFish(b *strings.Builder, cmds []commandDef) {
	needs := "__fish_" + programName + "_needs_command"
	using := "__fish_" + programName + "_using_command"

	fmt.Fprintf(b, "# fish completion for %s\n", programName)
	fmt.Fprintf(b, "function %s\n", needs)
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	fmt.Fprintf(b, "function %s\n", using)
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	fmt.Fprintf(b, "complete -c %s -f\n", programName)

	for _, c := range cmds {
		fmt.Fprintf(b, "complete -c %s -n %s -a %s -d '%s'\n", programName, needs, c.Name, fishEscape(c.Desc))
	}
	for _, c := range cmds {
		cond := fmt.Sprintf("'%s %s'", using, c.Name)
		if len(c.Args) > 0 {
			fmt.Fprintf(b, "complete -c %s -n %s -a '%s'\n", programName, cond, strings.Join(c.Args, " "))
		}
		if c.TakesFiles {
			fmt.Fprintf(b, "complete -c %s -n %s -F\n", programName, cond)
		}
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c %s -n %s", programName, cond)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += " -l " + f.Long + " -d '" + fishEscape(f.Desc) + "'"
			switch f.Type {
			case flagBool:
			case flagEnum:
				line += " -r -f -a '" + strings.Join(f.Values, " ") + "'"
			case flagFile:
				line += " -r -F"
			case flagDir:
				line += " -r -f -a '(__fish_complete_directories)'"
			default:
				line += " -r"
			}
			b.WriteString(line + "\n")
		}
	}
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}

// ---------------------------------------------------------------------------
// powershell
// ---------------------------------------------------------------------------

func writePowerShell(b *strings.Builder, cmds []commandDef) {
	fmt.Fprintf(b, "Register-ArgumentCompleter -Native -CommandName %s -ScriptBlock {\n", programName)
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n")
	b.WriteString("    $words = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n")
	fmt.Fprintf(b, "    $commands = @(%s)\n", psList(strings.Fields(commandNames(cmds))))
	b.WriteString("    if ($words.Count -le 1 -or ($words.Count -eq 2 -and $wordToComplete)) {\n")
	b.WriteString("        $commands | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n")
	b.WriteString("    $candidates = switch ($words[1]) {\n")
	for _, c := range cmds {
		var items []string
		items = append(items, c.Args...)
		for _, f := range c.Flags {
			items = append(items, "--"+f.Long)
		}
		fmt.Fprintf(b, "        '%s' { @(%s) }\n", c.Name, psList(items))
	}
	b.WriteString("        default { @() }\n")
	b.WriteString("    }\n")
	b.WriteString("    $candidates | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
}

func psList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + strings.ReplaceAll(s, "'", "''") + "'"
	}
	return strings.Join(quoted, ", ")
}
