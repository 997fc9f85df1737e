// gtree renders a directory hierarchy, local, remote over SFTP, or
// synthesized from an archive listing, as an indented tree of lines.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sadopc/gtree/internal/listing"
	"github.com/sadopc/gtree/internal/options"
	"github.com/sadopc/gtree/internal/remote"
	"github.com/sadopc/gtree/internal/render"
	"github.com/sadopc/gtree/internal/traverse"
	"github.com/sadopc/gtree/internal/util"
)

// version is set via ldflags.
var version = "dev"

var flags struct {
	allFiles      bool
	level         uint
	dirOnly       bool
	noIndent      bool
	printSize     bool
	humanReadable bool
	pattern       string
	exclude       string
	fullPath      bool
	color         bool
	noColor       bool
	ascii         bool
	sortByTime    bool
	natural       bool
	reverse       bool
	printModDate  bool
	outputFile    string
	fileLimit     uint64
	dirsFirst     bool
	classify      bool
	noReport      bool
	permissions   bool
	fromFile      bool
	jsonOut       bool

	sshPort  int
	sshBatch bool
}

var rootCmd = &cobra.Command{
	Use:     "gtree [path]",
	Short:   "List the contents of a directory in a tree-like format",
	Long:    "gtree lists directories as trees, with filtering, sorting and per-entry\ndecorations. The path may also be a remote user@host:path target, or with\n--fromfile an archive listing (tar/zip/7z/rar output) or plain path list.",
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		return run(cmd, path)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	f := rootCmd.Flags()
	f.BoolVarP(&flags.allFiles, "all", "a", false, "Include hidden files")
	f.UintVarP(&flags.level, "level", "L", 0, "Descend only level directories deep")
	f.BoolVarP(&flags.dirOnly, "directories", "d", false, "List directories only")
	f.BoolVarP(&flags.noIndent, "no-indent", "i", false, "Turn off file/directory indentation")
	f.BoolVarP(&flags.printSize, "size", "s", false, "Print the size of each file in bytes")
	f.BoolVarP(&flags.humanReadable, "human-readable", "H", false, "Print sizes in a human-readable format")
	f.StringVarP(&flags.pattern, "pattern", "P", "", "List only files that match the wild-card pattern")
	f.StringVarP(&flags.exclude, "exclude", "I", "", "Do not list files that match the wild-card pattern")
	f.BoolVarP(&flags.fullPath, "full-path", "f", false, "Print the full path prefix for each file")
	f.BoolVarP(&flags.color, "color", "C", false, "Turn colorization on always")
	f.BoolVarP(&flags.noColor, "no-color", "n", false, "Turn colorization off always (overrides --color)")
	f.BoolVarP(&flags.ascii, "ascii", "A", false, "Use ASCII line graphics for the indentation lines")
	f.BoolVarP(&flags.sortByTime, "sort-by-time", "t", false, "Sort output by last modification time")
	f.BoolVar(&flags.natural, "natural", false, "Compare names natural-order (a2 before a10)")
	f.BoolVarP(&flags.reverse, "reverse", "r", false, "Reverse the sort order")
	f.BoolVarP(&flags.printModDate, "mod-date", "D", false, "Print the date of last modification")
	f.StringVarP(&flags.outputFile, "output", "o", "", "Send output to filename")
	f.Uint64Var(&flags.fileLimit, "filelimit", 0, "Do not descend directories that contain more than # entries")
	f.BoolVar(&flags.dirsFirst, "dirsfirst", false, "List directories before files")
	f.BoolVarP(&flags.classify, "classify", "F", false, "Append indicator (one of /@*) to entries")
	f.BoolVar(&flags.noReport, "noreport", false, "Omit the file and directory report at the end")
	f.BoolVarP(&flags.permissions, "permissions", "p", false, "Print the protections for each file (unix only)")
	f.BoolVar(&flags.fromFile, "fromfile", false, "Read a listing from a file (or stdin when the path is \".\")")
	f.BoolVarP(&flags.jsonOut, "json", "J", false, "Emit the tree as JSON")

	f.IntVar(&flags.sshPort, "ssh-port", 22, "SSH port for remote targets")
	f.BoolVar(&flags.sshBatch, "ssh-batch", false, "Disable SSH prompts (key/agent auth only)")
}

// initConfig loads optional defaults from ~/.gtree.yaml. Flags given on the
// command line always win.
func initConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	viper.AddConfigPath(home)
	viper.SetConfigName(".gtree")
	viper.SetConfigType("yaml")
	_ = viper.ReadInConfig()
}

func buildOptions(cmd *cobra.Command) (*options.Options, error) {
	// Config-file values fill in flags the user did not set.
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) {
			_ = cmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})

	if cmd.Flags().Changed("level") && flags.level == 0 {
		return nil, fmt.Errorf("invalid level, must be greater than 0")
	}

	opts := &options.Options{
		AllFiles:      flags.allFiles,
		Level:         flags.level,
		LevelSet:      cmd.Flags().Changed("level"),
		DirOnly:       flags.dirOnly,
		NoIndent:      flags.noIndent,
		PrintSize:     flags.printSize,
		HumanReadable: flags.humanReadable,
		FullPath:      flags.fullPath,
		Color:         flags.color,
		NoColor:       flags.noColor,
		ASCII:         flags.ascii,
		SortByTime:    flags.sortByTime,
		Natural:       flags.natural,
		Reverse:       flags.reverse,
		PrintModDate:  flags.printModDate,
		OutputFile:    flags.outputFile,
		FileLimit:     flags.fileLimit,
		FileLimitSet:  cmd.Flags().Changed("filelimit"),
		DirsFirst:     flags.dirsFirst,
		Classify:      flags.classify,
		NoReport:      flags.noReport,
		Permissions:   flags.permissions,
		FromFile:      flags.fromFile,
		JSON:          flags.jsonOut,
		SSHPort:       flags.sshPort,
		SSHBatch:      flags.sshBatch,
	}

	if flags.pattern != "" {
		glob, err := options.CompileGlob(flags.pattern)
		if err != nil {
			return nil, err
		}
		opts.Pattern = glob
	}
	if flags.exclude != "" {
		glob, err := options.CompileGlob(flags.exclude)
		if err != nil {
			return nil, fmt.Errorf("exclude: %w", err)
		}
		opts.Exclude = glob
	}
	return opts, nil
}

// flushable is what both output writers expose to drain the sink.
type flushable interface {
	traverse.Visitor
	Flush() error
}

func run(cmd *cobra.Command, path string) error {
	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	// The sink must be writable before any line is produced.
	out := io.Writer(os.Stdout)
	toStdout := true
	var outFile *os.File
	if opts.OutputFile != "" {
		f, err := os.Create(opts.OutputFile)
		if err != nil {
			return fmt.Errorf("cannot open output file: %w", err)
		}
		defer f.Close()
		out = f
		outFile = f
		toStdout = false
	}

	var palette *render.Palette
	if !opts.JSON && render.ColorEnabled(opts, toStdout) {
		palette = render.DefaultPalette()
	}

	var visitor flushable
	if opts.JSON {
		visitor = render.NewJSONWriter(out, opts)
	} else {
		visitor = render.NewTreeWriter(out, opts, palette)
	}

	reader, rootKey, cleanup, err := selectReader(opts, path)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	walker := traverse.NewWalker(reader, opts, os.Stderr)
	walker.Walk(rootKey, path, visitor)

	if err := visitor.Flush(); err != nil {
		if util.IsBrokenPipe(err) {
			return nil
		}
		return fmt.Errorf("cannot write output: %w", err)
	}
	// A failed close can lose buffered data the flush reported as written.
	if outFile != nil {
		if err := outFile.Close(); err != nil {
			return fmt.Errorf("cannot write output: %w", err)
		}
	}
	return nil
}

// selectReader picks the traversal source: a parsed listing under
// --fromfile, an SFTP session for user@host:path targets, or the local
// filesystem.
func selectReader(opts *options.Options, path string) (traverse.DirReader, string, func(), error) {
	switch {
	case opts.FromFile:
		in := io.Reader(os.Stdin)
		if path != "." {
			f, err := os.Open(path)
			if err != nil {
				return nil, "", nil, fmt.Errorf("cannot read listing: %w", err)
			}
			defer f.Close()
			in = f
		}
		lines, err := listing.ReadLines(in)
		if err != nil {
			return nil, "", nil, fmt.Errorf("cannot read listing: %w", err)
		}
		return traverse.VirtualReader{Tree: listing.Parse(lines)}, "", nil, nil

	case remote.IsTarget(path):
		target, err := remote.ParseTarget(path)
		if err != nil {
			return nil, "", nil, err
		}
		client, err := remote.Connect(remote.Config{
			Target:  target,
			Port:    opts.SSHPort,
			Batch:   opts.SSHBatch,
			Timeout: 15 * time.Second,
		})
		if err != nil {
			return nil, "", nil, err
		}
		return client, client.Root(), func() { client.Close() }, nil

	default:
		return traverse.OSReader{}, path, nil, nil
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
