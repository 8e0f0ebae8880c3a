/*
Copyright © 2024 the micromet authors.
This file is part of micromet.

micromet is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

micromet is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with micromet.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package micrometutil wires the micromet library into a command-line
// tool: configuration handling, CSV input and output, and the cobra
// command tree.
package micrometutil

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/fluxtools/micromet"
)

// Cfg holds the global configuration. Configuration variables can be set
// in a configuration file (--config), as command-line flags, or as
// environment variables in the format 'MICROMET_var'.
var Cfg *viper.Viper

func init() {
	options := []struct {
		name       string
		usage      string
		defaultVal interface{}
		flagsets   []*pflag.FlagSet
	}{
		{
			name:       "config",
			usage:      `config specifies the path to the configuration file.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name:       "InputFile",
			usage:      `InputFile is the path to the CSV table of half-hourly observations.`,
			defaultVal: "observations.csv",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name:       "OutputFile",
			usage:      `OutputFile is the path the derived columns are written to.`,
			defaultVal: "derived.csv",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name:       "Site.CanopyHeight",
			usage:      `Site.CanopyHeight is the canopy height zh [m].`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), roughnessCmd.Flags()},
		},
		{
			name:       "Site.SensorHeight",
			usage:      `Site.SensorHeight is the sensor (reference) height zr [m].`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), roughnessCmd.Flags()},
		},
		{
			name:       "Site.LAI",
			usage:      `Site.LAI is the leaf area index [-]; 0 means unknown.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), roughnessCmd.Flags()},
		},
		{
			name:       "Site.LeafDim",
			usage:      `Site.LeafDim is the characteristic leaf dimension Dl [m]; 0 means unknown.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name:       "Site.Latitude",
			usage:      `Site.Latitude [°] is used for potential radiation; set with Site.Longitude.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name:       "Site.Longitude",
			usage:      `Site.Longitude [°] is used for potential radiation.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "StabilityFormulation",
			usage: `StabilityFormulation selects the Monin-Obukhov correction:
              "Dyer_1970" or "no_stability_correction".`,
			defaultVal: "Dyer_1970",
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), roughnessCmd.Flags()},
		},
		{
			name: "RoughnessMethod",
			usage: `RoughnessMethod selects the roughness estimation regime:
              "canopy_height", "canopy_height&LAI", or "wind_profile".`,
			defaultVal: "wind_profile",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name:       "WindHeight",
			usage:      `WindHeight is the height [m] the wind profile is evaluated at.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name:       "PTAlpha",
			usage:      `PTAlpha is the Priestley-Taylor coefficient.`,
			defaultVal: micromet.PTAlphaDefault,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
	}

	Cfg = viper.New()
	Cfg.SetEnvPrefix("MICROMET")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				set.String(option.name, v, option.usage)
			case float64:
				set.Float64(option.name, v, option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(roughnessCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("micromet: problem reading configuration file: %w", err)
		}
	}
	return nil
}

func siteFromConfig() micromet.SiteGeometry {
	return micromet.SiteGeometry{
		Zh:  Cfg.GetFloat64("Site.CanopyHeight"),
		Zr:  Cfg.GetFloat64("Site.SensorHeight"),
		LAI: Cfg.GetFloat64("Site.LAI"),
		Dl:  Cfg.GetFloat64("Site.LeafDim"),
	}
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "micromet",
	Short: "Derive micrometeorological quantities from flux-tower data.",
	Long: `micromet derives micrometeorological and ecophysiological quantities
from half-hourly eddy-covariance observations under the big-leaf
approximation: stability corrections, roughness parameters, wind
profiles, conductances, and potential evapotranspiration.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format
'MICROMET_var' where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("micromet v%s\n", micromet.Version)
	},
	DisableAutoGenTag: true,
}

var roughnessCmd = &cobra.Command{
	Use:   "roughness [observations.csv]",
	Short: "Estimate roughness parameters for a site",
	Long: `roughness prints the displacement height and roughness length under
each estimation regime. The wind-profile regime is only evaluated when an
observation table is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		site := siteFromConfig()
		f, err := micromet.ParseFormulation(Cfg.GetString("StabilityFormulation"))
		if err != nil {
			return err
		}
		methods := []micromet.RoughnessMethod{
			micromet.FromCanopyHeight,
			micromet.FromCanopyHeightLAI,
		}
		var s *micromet.Series
		if len(args) == 1 {
			if s, err = ReadSeriesFile(args[0]); err != nil {
				return err
			}
			methods = append(methods, micromet.FromWindProfile)
		}
		for _, m := range methods {
			est, err := micromet.RoughnessParameters(micromet.RoughnessOptions{
				Method:      m,
				Formulation: f,
				Site:        site,
				Series:      s,
			})
			if err != nil {
				return err
			}
			cmd.Printf("%-18s d=%.3g m  z0m=%.3g m  z0m_se=%.3g m\n",
				m, est.D, est.Z0m, est.Z0mSE)
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute derived columns from an observation table",
	Long: `run reads the observation table, estimates the site roughness
parameters, and appends derived columns: stability parameters, wind speed
at WindHeight, aerodynamic and boundary-layer conductances, potential
evapotranspiration (when net radiation is present), and potential
radiation (when timestamps and coordinates are present).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := zap.NewProduction()
		if err != nil {
			return err
		}
		defer logger.Sync()
		return run(logger.Sugar())
	},
	DisableAutoGenTag: true,
}

func run(log *zap.SugaredLogger) error {
	f, err := micromet.ParseFormulation(Cfg.GetString("StabilityFormulation"))
	if err != nil {
		return err
	}
	method, err := micromet.ParseRoughnessMethod(Cfg.GetString("RoughnessMethod"))
	if err != nil {
		return err
	}
	site := siteFromConfig()
	c := micromet.DefaultConstants()

	s, err := ReadSeriesFile(Cfg.GetString("InputFile"))
	if err != nil {
		return err
	}
	log.Infow("read observations",
		"file", Cfg.GetString("InputFile"), "rows", s.Len(),
		"validUstar", micromet.ValidRows(s.Ustar),
		"validWind", micromet.ValidRows(s.Wind))

	est, err := micromet.RoughnessParameters(micromet.RoughnessOptions{
		Method:      method,
		Formulation: f,
		Site:        site,
		Series:      s,
		Constants:   c,
	})
	if err != nil {
		return err
	}
	log.Infow("roughness parameters",
		"method", method.String(), "d", est.D, "z0m", est.Z0m, "z0m_se", est.Z0mSE)

	zeta, psiM, err := micromet.StabilityCorrectionSeries(f, s, site.Zr, est.D, c)
	if err != nil {
		return err
	}
	derived := []Column{
		{Name: "zeta", Values: zeta},
		{Name: "psi_m", Values: psiM},
	}

	if zWind := Cfg.GetFloat64("WindHeight"); zWind > 0 {
		wind, err := micromet.WindProfile(s, micromet.WindProfileOptions{
			Z:           zWind,
			D:           est.D,
			Z0m:         est.Z0m,
			Formulation: f,
			Site:        site,
			Constants:   c,
		})
		if err != nil {
			return err
		}
		derived = append(derived, Column{
			Name:   fmt.Sprintf("wind_%gm", zWind),
			Values: wind,
		})
	}

	if s.Wind != nil && s.Ustar != nil {
		ga, err := micromet.AerodynamicConductanceMomentumSeries(s)
		if err != nil {
			return err
		}
		derived = append(derived, Column{Name: "Ga_m", Values: ga})
	}

	if site.Dl > 0 && site.LAI > 0 && s.Wind != nil && s.Ustar != nil {
		gb, err := micromet.BoundaryLayerConductanceSuSeries(s, site, c)
		if err != nil {
			return err
		}
		derived = append(derived, Column{Name: "Gb_Su", Values: gb})
	} else if s.Ustar != nil {
		gb := make([]float64, s.Len())
		for i := range gb {
			gb[i] = micromet.BoundaryLayerConductanceThom(s.Ustar[i])
		}
		derived = append(derived, Column{Name: "Gb_Thom", Values: gb})
	}

	if s.Rn != nil {
		LE, ET, err := micromet.PotentialETSeries(s, Cfg.GetFloat64("PTAlpha"), c)
		if err != nil {
			return err
		}
		derived = append(derived,
			Column{Name: "LE_pot", Values: LE},
			Column{Name: "ET_pot", Values: ET})
	}

	lat, lon := Cfg.GetFloat64("Site.Latitude"), Cfg.GetFloat64("Site.Longitude")
	if s.Time != nil && (lat != 0 || lon != 0) {
		rpot, err := micromet.PotentialRadiationSeries(s, lat, lon)
		if err != nil {
			return err
		}
		derived = append(derived, Column{Name: "Rpot", Values: rpot})
	}

	out := Cfg.GetString("OutputFile")
	if err := WriteSeriesFile(out, s, derived); err != nil {
		return err
	}
	log.Infow("wrote derived columns", "file", out, "columns", len(derived))
	return nil
}
