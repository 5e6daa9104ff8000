// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cip-eds/eds"
	"github.com/cip-eds/eds/internal/xlog"
)

var logger *xlog.Helper

func prettyPrint(v any) string {
	buf, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(buf)
}

func loadDocument(filename string) (*eds.Document, error) {
	logger.Debugf("processing filename %s", filename)
	doc, err := eds.LoadFile(filename, &eds.Options{})
	if err != nil {
		logger.Errorf("error while opening file %s: %v", filename, err)
		return nil, err
	}
	return doc, nil
}

func runParse(cmd *cobra.Command, args []string) {
	doc, err := loadDocument(args[0])
	if err != nil {
		os.Exit(1)
	}
	fmt.Println(prettyPrint(doc.Sections()))
}

func runValidate(cmd *cobra.Command, args []string) {
	doc, err := loadDocument(args[0])
	if err != nil {
		os.Exit(1)
	}
	diags := doc.Validate()
	for _, d := range diags {
		fmt.Println(d.String())
	}
	if doc.Protocol != "" {
		logger.Debugf("classified protocol: %s", doc.Protocol)
	}
	for _, d := range diags {
		if d.Severity == eds.SeverityError {
			os.Exit(1)
		}
	}
}

func runFmt(cmd *cobra.Command, args []string) {
	doc, err := loadDocument(args[0])
	if err != nil {
		os.Exit(1)
	}
	out, err := doc.Serialize()
	if err != nil {
		logger.Errorf("error while serializing %s: %v", args[0], err)
		os.Exit(1)
	}
	var pretty bytes.Buffer
	pretty.Write(out)
	fmt.Print(pretty.String())
}

func main() {
	stdlog := xlog.NewStdLogger(os.Stdout)
	logger = xlog.NewHelper(xlog.NewFilter(stdlog, xlog.LevelWarn))

	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "edsdump",
		Short: "A CIP Electronic Data Sheet inspector",
		Long:  "edsdump parses, validates and re-serializes CIP Electronic Data Sheet documents",
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("You are using version 0.1.0")
		},
	}

	parseCmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse an EDS file and dump its sections as JSON",
		Args:  cobra.ExactArgs(1),
		Run:   runParse,
	}

	validateCmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate an EDS file and print its diagnostics",
		Args:  cobra.ExactArgs(1),
		Run:   runValidate,
	}

	fmtCmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Re-serialize an EDS file in canonical form",
		Args:  cobra.ExactArgs(1),
		Run:   runFmt,
	}

	rootCmd.AddCommand(versionCmd, parseCmd, validateCmd, fmtCmd)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			logger = xlog.NewHelper(stdlog)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
