package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sameer/lsys/gallery"
	"github.com/sameer/lsys/parser"
	"github.com/sameer/lsys/render"
)

func galleryCmd(args []string) error {
	fs := flag.NewFlagSet("gallery", flag.ExitOnError)
	dbPath := fs.String("db", "lsys.db", "SQLite database file")
	cf := addCanvasFlags(fs)
	output := fs.String("out", "", "Output SVG file for the render action (default: stdout)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: lsys gallery <action> [arguments] [options]

Manage a SQLite library of saved L-system models.

Actions:
  save <model.json>   Save (or replace) a model under its name
  list                List saved models
  show <name>         Print a saved model as JSON
  render <name>       Render a saved model and record it in the history
  history <name>      Show the render history of a saved model
  delete <name>       Remove a saved model and its history

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("action required")
	}

	store, err := gallery.New(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	action := fs.Arg(0)
	switch action {
	case "save":
		if fs.NArg() < 2 {
			return fmt.Errorf("save requires a model file")
		}
		m, err := parser.ReadFile(fs.Arg(1))
		if err != nil {
			return err
		}
		id, err := store.SaveGrammar(m)
		if err != nil {
			return err
		}
		fmt.Printf("Saved %s (%s)\n", m.Name, id)
		return nil

	case "list":
		grammars, err := store.ListGrammars()
		if err != nil {
			return err
		}
		for _, g := range grammars {
			fmt.Printf("%-12s axiom=%s iterations=%d\n", g.Name, g.Model.Axiom, g.Model.Iterations)
		}
		return nil

	case "show":
		if fs.NArg() < 2 {
			return fmt.Errorf("show requires a model name")
		}
		g, err := store.GetGrammar(fs.Arg(1))
		if err != nil {
			return err
		}
		doc, err := parser.ToJSON(g.Model)
		if err != nil {
			return err
		}
		fmt.Println(string(doc))
		return nil

	case "render":
		if fs.NArg() < 2 {
			return fmt.Errorf("render requires a model name")
		}
		g, err := store.GetGrammar(fs.Arg(1))
		if err != nil {
			return err
		}
		sys, err := g.Model.System()
		if err != nil {
			return err
		}
		printWarnings(sys.Validate())
		opts, err := canvasOptions(g.Model, cf)
		if err != nil {
			return err
		}
		doc, err := render.RenderString(sys, opts)
		if err != nil {
			return err
		}
		if _, err := store.RecordRender(g.ID, opts, int64(len(doc))); err != nil {
			return err
		}
		if *output == "" {
			fmt.Print(doc)
			return nil
		}
		if err := os.WriteFile(*output, []byte(doc), 0644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", *output)
		return nil

	case "history":
		if fs.NArg() < 2 {
			return fmt.Errorf("history requires a model name")
		}
		g, err := store.GetGrammar(fs.Arg(1))
		if err != nil {
			return err
		}
		renders, err := store.ListRenders(g.ID)
		if err != nil {
			return err
		}
		for _, r := range renders {
			fmt.Printf("%s  %gx%g%s  %d bytes  %s\n",
				r.CreatedAt.Format("2006-01-02 15:04:05"), r.Width, r.Height, r.Unit, r.Size, r.ID)
		}
		return nil

	case "delete":
		if fs.NArg() < 2 {
			return fmt.Errorf("delete requires a model name")
		}
		if err := store.DeleteGrammar(fs.Arg(1)); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", fs.Arg(1))
		return nil

	default:
		fs.Usage()
		return fmt.Errorf("unknown action: %s", action)
	}
}
