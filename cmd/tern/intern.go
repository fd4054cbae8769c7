package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tern/internal/driver"
	"tern/internal/names"
)

var internCmd = &cobra.Command{
	Use:   "intern [flags] [files...]",
	Short: "Intern identifiers and dump the name table",
	Long:  `Intern reads whitespace-separated identifiers from files (or stdin) into one arena and dumps the resulting table`,
	RunE:  runIntern,
}

func init() {
	internCmd.Flags().Bool("stats", false, "print table sizes only")
}

func runIntern(cmd *cobra.Command, args []string) error {
	idents, err := readIdentifiers(args)
	if err != nil {
		return err
	}

	arena := names.NewArena(names.Hints{UTF8: uint(len(idents))})
	handles := make([]names.Handle, len(idents))
	for i, ident := range idents {
		handles[i] = driver.InternIdentifier(arena, ident)
	}
	arena.Freeze()

	statsOnly, err := cmd.Flags().GetBool("stats")
	if err != nil {
		return fmt.Errorf("failed to get stats flag: %w", err)
	}
	if !statsOnly {
		dumpArena(cmd.OutOrStdout(), arena, useColor(cmd, os.Stdout))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d identifiers, %d utf8, %d unique, %d constant\n",
		len(handles),
		arena.Len(names.KindUTF8), arena.Len(names.KindUnique), arena.Len(names.KindConstant))
	return nil
}

// readIdentifiers gathers whitespace-separated identifiers from the given
// files, or stdin when none are given.
func readIdentifiers(paths []string) ([]string, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return strings.Fields(string(data)), nil
	}

	var idents []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		idents = append(idents, strings.Fields(string(data))...)
	}
	return idents, nil
}

func dumpArena(w io.Writer, arena *names.Arena, colorize bool) {
	kindColor := color.New(color.FgCyan)
	if !colorize {
		kindColor.DisableColor()
	}

	arena.EachUTF8(func(h names.Handle, content []byte) {
		fmt.Fprintf(w, "%s %s\n", kindColor.Sprintf("%-10v", h), content)
	})
	arena.EachUnique(func(h, _ names.Handle, _ int32, _ names.UniqueKind) {
		fmt.Fprintf(w, "%s %s\n", kindColor.Sprintf("%-10v", h), arena.Show(h))
	})
	arena.EachConstant(func(h, _ names.Handle) {
		fmt.Fprintf(w, "%s %s\n", kindColor.Sprintf("%-10v", h), arena.Show(h))
	})
}
