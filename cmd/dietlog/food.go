package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dietlog/dietlog/internal/app"
	"github.com/dietlog/dietlog/internal/command"
	"github.com/dietlog/dietlog/internal/model"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage the food database",
}

var (
	foodID         string
	foodName       string
	foodKeywords   []string
	foodCalories   float64
	foodComponents []string
	foodOverwrite  bool
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a basic food with fixed calories per serving",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sess *app.Session) error {
			food := model.NewBasic(foodID, foodName, foodKeywords, foodCalories)
			summary, err := sess.Manager.Run(&command.AddFood{
				Foods:     sess.Foods,
				Food:      food,
				Overwrite: foodOverwrite,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		})
	},
}

var foodAddCompositeCmd = &cobra.Command{
	Use:   "add-composite",
	Short: "Add a composite food built from other foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		components := make([]model.Component, 0, len(foodComponents))
		for _, raw := range foodComponents {
			c, err := parseComponentSpec(raw)
			if err != nil {
				return err
			}
			components = append(components, c)
		}
		return withSession(func(sess *app.Session) error {
			food := model.NewComposite(foodID, foodName, foodKeywords, components)
			summary, err := sess.Manager.Run(&command.AddFood{
				Foods:     sess.Foods,
				Food:      food,
				Overwrite: foodOverwrite,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		})
	},
}

var foodComponentCmd = &cobra.Command{
	Use:   "component",
	Short: "Manage components of composite foods",
}

var foodComponentAddCmd = &cobra.Command{
	Use:   "add <composite-id> <component-id> <servings>",
	Short: "Append a component to a composite food",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		servings, err := parseServingsArg(args[2])
		if err != nil {
			return err
		}
		return withSession(func(sess *app.Session) error {
			summary, err := sess.Manager.Run(&command.AddComponent{
				Foods:       sess.Foods,
				CompositeID: args[0],
				ComponentID: args[1],
				Servings:    servings,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sess *app.Session) error {
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tKIND\tNAME\tKCAL/SERVING\tKEYWORDS")
			for _, f := range sess.Foods.All() {
				calories, err := sess.Foods.ResolveCalories(f.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n",
					f.ID, f.Kind, f.Name, formatCalories(calories), joinKeywords(f.Keywords))
			}
			return nil
		})
	},
}

var foodShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one food with resolved calories",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sess *app.Session) error {
			f, err := sess.Foods.Get(args[0])
			if err != nil {
				return err
			}
			calories, err := sess.Foods.ResolveCalories(f.ID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID: %s\n", f.ID)
			fmt.Fprintf(out, "Name: %s\n", f.Name)
			fmt.Fprintf(out, "Kind: %s\n", f.Kind)
			fmt.Fprintf(out, "Keywords: %s\n", joinKeywords(f.Keywords))
			fmt.Fprintf(out, "Calories/serving: %s\n", formatCalories(calories))
			if f.Kind == model.KindComposite {
				fmt.Fprintln(out, "Components:")
				for _, c := range f.Components {
					fmt.Fprintf(out, "  %s x%v\n", c.FoodID, c.Servings)
				}
			}
			return nil
		})
	},
}

var foodSearchAll bool

var foodSearchCmd = &cobra.Command{
	Use:   "search <keyword>...",
	Short: "Search foods by keywords",
	Long:  "Search foods by case-insensitive keyword tokens. By default a food matches when it has any of the keywords; --all requires every keyword.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := model.MatchAny
		if foodSearchAll {
			mode = model.MatchAll
		}
		return withSession(func(sess *app.Session) error {
			found := false
			for f := range sess.Foods.Search(args, mode) {
				if !found {
					fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tKEYWORDS")
					found = true
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", f.ID, f.Name, joinKeywords(f.Keywords))
			}
			if !found {
				fmt.Fprintln(cmd.OutOrStdout(), "No foods matched.")
			}
			return nil
		})
	},
}

var foodLookupSource string

var foodLookupCmd = &cobra.Command{
	Use:   "lookup <query>",
	Short: "Look up foods through a registered food source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sess *app.Session) error {
			src, err := sess.Sources.Get(foodLookupSource)
			if err != nil {
				return fmt.Errorf("%w (registered: %v)", err, sess.Sources.Names())
			}
			results := src.Search(args[0])
			if len(results) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No results from source %q.\n", src.Name())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tKIND")
			for _, f := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", f.ID, f.Name, f.Kind)
			}
			return nil
		})
	},
}

func joinKeywords(keywords []string) string {
	out := ""
	for i, k := range keywords {
		if i > 0 {
			out += ","
		}
		out += k
	}
	return out
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodAddCmd, foodAddCompositeCmd, foodComponentCmd, foodListCmd, foodShowCmd, foodSearchCmd, foodLookupCmd)
	foodComponentCmd.AddCommand(foodComponentAddCmd)

	for _, c := range []*cobra.Command{foodAddCmd, foodAddCompositeCmd} {
		c.Flags().StringVar(&foodID, "id", "", "Unique food identifier")
		c.Flags().StringVar(&foodName, "name", "", "Display name")
		c.Flags().StringSliceVar(&foodKeywords, "kw", nil, "Search keyword (repeatable)")
		c.Flags().BoolVar(&foodOverwrite, "overwrite", false, "Replace an existing food with the same id")
		_ = c.MarkFlagRequired("id")
		_ = c.MarkFlagRequired("name")
	}
	foodAddCmd.Flags().Float64Var(&foodCalories, "calories", 0, "Calories per serving")
	_ = foodAddCmd.MarkFlagRequired("calories")
	foodAddCompositeCmd.Flags().StringSliceVar(&foodComponents, "component", nil, "Component as id:servings (repeatable)")

	foodSearchCmd.Flags().BoolVar(&foodSearchAll, "all", false, "Require all keywords to match")
	foodLookupCmd.Flags().StringVar(&foodLookupSource, "source", "local", "Food source to query")
}
