package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"portfolio-api/internal/store"

	"github.com/spf13/cobra"
)

var showers = map[string]func(context.Context, *store.Store) (any, error){
	"home":             func(ctx context.Context, s *store.Store) (any, error) { return s.Home(ctx) },
	"about.work":       func(ctx context.Context, s *store.Store) (any, error) { return s.Work(ctx) },
	"about.school":     func(ctx context.Context, s *store.Store) (any, error) { return s.School(ctx) },
	"skills":           func(ctx context.Context, s *store.Store) (any, error) { return s.SkillTypes(ctx) },
	"projects":         func(ctx context.Context, s *store.Store) (any, error) { return s.Projects(ctx) },
	"contact":          func(ctx context.Context, s *store.Store) (any, error) { return s.Contact(ctx) },
	"contact-items":    func(ctx context.Context, s *store.Store) (any, error) { return s.ContactItems(ctx) },
	"contact-messages": func(ctx context.Context, s *store.Store) (any, error) { return s.Messages(ctx) },
	"testimonials":     func(ctx context.Context, s *store.Store) (any, error) { return s.AllTestimonials(ctx) },
}

var showCmd = &cobra.Command{
	Use:       "show <resource>",
	Short:     "Print a resource as the API would return it",
	Args:      cobra.ExactArgs(1),
	ValidArgs: showNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		show, ok := showers[args[0]]
		if !ok {
			return fmt.Errorf("unknown resource %q (one of: %s)", args[0], strings.Join(showNames(), ", "))
		}
		st, _, err := openStore()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		v, err := show(ctx, st)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	},
}

func showNames() []string {
	return []string{"home", "about.work", "about.school", "skills", "projects", "contact", "contact-items", "contact-messages", "testimonials"}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
