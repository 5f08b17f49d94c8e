package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// InitConfig makes every flag overridable through the environment,
// with dashes mapped to underscores (eg. MYSQL_HOST for --mysql-host).
func InitConfig() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Flags is an ordered set of flag definitions that commands compose
// from the config package's per-backend groups
type Flags []FlagData

// AddToCommand registers every flag in the set on the command
func (f Flags) AddToCommand(command *cobra.Command, persistent ...bool) {
	for _, g := range f {
		g.AddToCommand(command, persistent...)
	}
}

func (f Flags) Append(more Flags) Flags {
	f = append(f, more...)
	return f
}

// BindViper binds every flag in the set, see FlagData.BindViper for
// the timing constraint
func (f Flags) BindViper(command *cobra.Command, persistent ...bool) {
	for _, g := range f {
		g.BindViper(command, persistent...)
	}
}

// FlagData describes a single flag; Name doubles as the viper key and
// is expected to already be kebab-cased
type FlagData struct {
	Name         string
	Short        rune
	DefaultValue any
	Usage        string
	Type         FlagType
}

// FlagType restricts flags to the types the switch in AddToCommand
// knows how to register
type FlagType string

// AddToCommand registers the flag on the command, typically from the
// package's init(). Panics on a FlagType it does not recognise since
// that is a programming error, not a runtime condition
func (f *FlagData) AddToCommand(command *cobra.Command, persistent ...bool) {
	var flags *pflag.FlagSet
	if len(persistent) > 0 && persistent[0] {
		flags = command.PersistentFlags()
	} else {
		flags = command.Flags()
	}
	switch f.Type {

	case FlagTypeBool:
		if f.Short != 0 {
			flags.BoolP(f.Name, string(f.Short), f.DefaultValue.(bool), f.Usage)
			break
		}
		flags.Bool(f.Name, f.DefaultValue.(bool), f.Usage)

	case FlagTypeDuration:
		if f.Short != 0 {
			flags.DurationP(f.Name, string(f.Short), f.DefaultValue.(time.Duration), f.Usage)
			break
		}
		flags.Duration(f.Name, f.DefaultValue.(time.Duration), f.Usage)

	case FlagTypeFloat:
		if f.Short != 0 {
			flags.Float64P(f.Name, string(f.Short), f.DefaultValue.(float64), f.Usage)
			break
		}
		flags.Float64(f.Name, f.DefaultValue.(float64), f.Usage)

	case FlagTypeInteger:
		if f.Short != 0 {
			flags.IntP(f.Name, string(f.Short), f.DefaultValue.(int), f.Usage)
			break
		}
		flags.Int(f.Name, f.DefaultValue.(int), f.Usage)

	case FlagTypeString:
		if f.Short != 0 {
			flags.StringP(f.Name, string(f.Short), f.DefaultValue.(string), f.Usage)
			break
		}
		flags.String(f.Name, f.DefaultValue.(string), f.Usage)

	case FlagTypeStringSlice:
		if f.Short != 0 {
			flags.StringSliceP(f.Name, string(f.Short), f.DefaultValue.([]string), f.Usage)
			break
		}
		flags.StringSlice(f.Name, f.DefaultValue.([]string), f.Usage)
	default:
		panic(fmt.Sprintf("unknown FlagType[%s]", f.Type))
	}
}

// BindViper binds the flag to viper under its Name. Binding has to
// happen in the command's PreRun and not at registration time; two
// commands sharing a flag name would otherwise clobber each other's
// bindings
func (f *FlagData) BindViper(command *cobra.Command, persistent ...bool) {
	var flags *pflag.FlagSet
	if len(persistent) > 0 && persistent[0] {
		flags = command.PersistentFlags()
	} else {
		flags = command.Flags()
	}
	viper.BindPFlag(f.Name, flags.Lookup(f.Name))
	viper.BindEnv(f.Name)
}
