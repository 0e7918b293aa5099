package cmd

import (
	"fmt"
	"os"

	"github.com/fastcoll/fastcoll/cmd/perf"
	"github.com/fastcoll/fastcoll/cmd/util"
	"github.com/spf13/cobra"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "fastcoll",
		Short: "high-performance collections library",
		Long: fmt.Sprintf(`fastcoll (v%s)

A high-performance collections library written in Go, providing hash,
sorted and sharded map engines with a composable view layer on top.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of fastcoll",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fastcoll v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(perf.PerfCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "serializer"
	RootCmd.PersistentFlags().String(key, "binary", util.WrapString("serializer to use for snapshot output (binary, msgpack, json)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	util.InitConfig()
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
