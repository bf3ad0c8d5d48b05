package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dietlog/dietlog/internal/app"
	"github.com/dietlog/dietlog/internal/calc"
	"github.com/dietlog/dietlog/internal/command"
	"github.com/dietlog/dietlog/internal/model"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the user profile",
}

var (
	profileGender     string
	profileHeight     float64
	profileBirthDate  string
	profileCalculator string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create the profile or update individual fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		update := command.ProfileUpdate{}
		if cmd.Flags().Changed("gender") {
			gender, err := model.ParseGender(profileGender)
			if err != nil {
				return err
			}
			update.Gender = &gender
		}
		if cmd.Flags().Changed("height") {
			if profileHeight <= 0 {
				return fmt.Errorf("height must be > 0")
			}
			update.HeightCm = &profileHeight
		}
		if cmd.Flags().Changed("birth-date") {
			birth, err := parseDateArg("birth date", profileBirthDate)
			if err != nil {
				return err
			}
			update.BirthDate = &birth
		}
		if cmd.Flags().Changed("calculator") {
			if _, err := calc.Lookup(profileCalculator); err != nil {
				return fmt.Errorf("%w (registered: %v)", err, calc.Names())
			}
			update.Calculator = &profileCalculator
		}
		return withSession(func(sess *app.Session) error {
			summary, err := sess.Manager.Run(&command.UpdateProfile{
				Profile: sess.Profile,
				Update:  update,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		})
	},
}

var (
	dailyWeight   float64
	dailyActivity string
)

var profileDailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Record weight and activity level for the working date",
	RunE: func(cmd *cobra.Command, args []string) error {
		activity, err := model.ParseActivityLevel(dailyActivity)
		if err != nil {
			return err
		}
		if dailyWeight <= 0 {
			return fmt.Errorf("weight must be > 0")
		}
		return withSession(func(sess *app.Session) error {
			summary, err := sess.Manager.Run(&command.UpdateDailyProfile{
				Profile: sess.Profile,
				Daily: model.DailyProfile{
					Date:     sess.WorkingDate,
					WeightKg: dailyWeight,
					Activity: activity,
				},
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the user profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sess *app.Session) error {
			p, err := sess.Profile.Get()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Gender: %s\n", p.Gender)
			fmt.Fprintf(out, "Height: %v cm\n", p.HeightCm)
			fmt.Fprintf(out, "Birth date: %s\n", p.BirthDate.Format(model.DateFormat))
			fmt.Fprintf(out, "Calculator: %s\n", p.Calculator)
			if len(p.Daily) > 0 {
				fmt.Fprintln(out, "Daily records:")
				for _, d := range p.Daily {
					fmt.Fprintf(out, "  %s\t%v kg\t%s\n", d.Date, d.WeightKg, d.Activity)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileDailyCmd, profileShowCmd)

	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender: male, female, or other")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().StringVar(&profileBirthDate, "birth-date", "", "Birth date YYYY-MM-DD")
	profileSetCmd.Flags().StringVar(&profileCalculator, "calculator", "", "Calorie calculation strategy")

	profileDailyCmd.Flags().Float64Var(&dailyWeight, "weight", 0, "Weight in kg")
	profileDailyCmd.Flags().StringVar(&dailyActivity, "activity", "", "Activity level: sedentary, light, moderate, very, extra")
	_ = profileDailyCmd.MarkFlagRequired("weight")
	_ = profileDailyCmd.MarkFlagRequired("activity")
}
