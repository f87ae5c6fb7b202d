// Command himectl is a demo host exercising the himecore library from the
// command line. It is not part of the library's ABI surface.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	hime "github.com/hime-ime/himecore"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "himectl",
		Short: "Exercise the himecore input-method engine from a terminal",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "himectl.toml", "path to a TOML config file")

	root.AddCommand(versionCmd(), searchCmd(), convertCmd(), tableCmd(), keyCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() hime.Config {
	cfg, err := hime.LoadConfig(configPath)
	if err != nil {
		hime.SetLogLevel(zerolog.WarnLevel)
		fmt.Fprintf(os.Stderr, "himectl: config load failed, using defaults: %v\n", err)
		return hime.DefaultConfig()
	}
	return cfg
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the himecore library version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(hime.GetVersion())
			return nil
		},
	}
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search built-in input methods and registered GTAB tables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var query string
			if len(args) == 1 {
				query = args[0]
			}
			for _, r := range hime.Search(query) {
				kind := "table"
				if r.IsMethod {
					kind = "method"
				}
				fmt.Printf("%3d  %-8s %s\n", r.Score, kind, r.Name)
			}
			return nil
		},
	}
}

func convertCmd() *cobra.Command {
	var toSimplified bool
	cmd := &cobra.Command{
		Use:   "convert [text]",
		Short: "Convert text between Traditional and Simplified Chinese",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if toSimplified {
				fmt.Println(hime.TradToSimp(args[0]))
			} else {
				fmt.Println(hime.SimpToTrad(args[0]))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&toSimplified, "to-simplified", false, "convert Traditional to Simplified instead")
	return cmd
}

func tableCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "table", Short: "Inspect built-in GTAB tables"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List built-in GTAB tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range hime.ListBuiltinTables() {
				fmt.Printf("%3d  %-12s %s\n", t.ID, t.Filename, t.Name)
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "info [id]",
		Short: "Show details for a loaded GTAB table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid table id %q: %w", args[0], err)
			}
			cfg := loadConfig()
			tbl, err := hime.GtabByID(cfg.DataDir, id)
			if err != nil {
				return err
			}
			fmt.Printf("name=%s keys=%d max_press=%d keybits=%d\n", tbl.Name, tbl.KeyCount, tbl.MaxPress, tbl.Keybits)
			return nil
		},
	})
	return cmd
}

func keyCmd() *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "key [keys]",
		Short: "Feed a sequence of characters through a fresh context and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if err := hime.LoadLexicon(cfg.DataDir); err != nil {
				fmt.Fprintf(os.Stderr, "himectl: lexicon load failed: %v\n", err)
			}

			ctx := hime.NewContext()
			cfg.Apply(ctx)
			ctx.SetChineseMode(true)
			ctx.Feedback = func(event hime.FeedbackEvent, annotation string) {
				hime.SetLogLevel(zerolog.InfoLevel)
			}

			switch method {
			case "pho", "":
				ctx.SetInputMethod(hime.MethodPHO)
			case "tsin":
				ctx.SetInputMethod(hime.MethodTSIN)
			case "intcode":
				ctx.SetInputMethod(hime.MethodIntcode)
			default:
				return fmt.Errorf("unknown method %q", method)
			}

			for _, r := range args[0] {
				ctx.ProcessKey(int(r), r, 0)
			}
			fmt.Printf("preedit: %s\n", ctx.Preedit())
			fmt.Printf("commit:  %s\n", ctx.CommitText())
			return nil
		},
	}
	cmd.Flags().StringVar(&method, "method", "pho", "input method: pho, tsin, intcode")
	return cmd
}
