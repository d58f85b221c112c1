// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/consensys/go-bop/pkg/bop"
	"github.com/consensys/go-bop/pkg/dataset"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Family of shaped types used for ad-hoc shapes derived from data sources.
var bopBase = bop.NewBase("BoP")

// showCmd loads a data source into a bag and prints it.
var showCmd = &cobra.Command{
	Use:   "show [flags] data_file",
	Short: "Print a tabular view of a data source.",
	Long: `Load a JSON, CSV or sqlite data source into a bag whose shape is
derived from the data, optionally narrow it to a subset of its columns, and
print the resulting table.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		columns := getString(cmd, "columns")
		bag := readDataSource(args[0], getString(cmd, "table"))
		// Narrow (if requested)
		if columns != "" {
			bag = narrowTo(bag, strings.Split(columns, ","))
		}
		//
		bag.Show()
	},
}

// Parse a data source using a reader based on the extension of the filename,
// deriving the shape of the resulting bag from the data itself.
func readDataSource(filename string, table string) *bop.Bag {
	var (
		records []bop.Record
		err     error
	)
	// Check file extension
	switch path.Ext(filename) {
	case ".json":
		records, err = bop.ReadJSONRecords(filename)
	case ".csv":
		records, err = bop.ReadCSVRecords(filename)
	case ".db", ".sqlite":
		records, err = readDatabase(filename, table)
	default:
		err = fmt.Errorf("unknown data source format: %s", filename)
	}
	//
	if err == nil {
		var bag *bop.Bag
		//
		bag, err = inferredBag(records)
		if err == nil {
			return bag
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return nil
}

// Read all records of a given table in a sqlite database.
func readDatabase(filename string, table string) ([]bop.Record, error) {
	if table == "" {
		return nil, fmt.Errorf("sqlite source %s requires --table", filename)
	}
	//
	db, err := dataset.OpenSQLite(filename)
	if err != nil {
		return nil, err
	}
	//
	defer db.Close()
	//
	return dataset.NewSQLTable(db, table).Records()
}

// Construct a bag over a shape inferred from raw records.
func inferredBag(records []bop.Record) (*bop.Bag, error) {
	columns := inferColumns(records)
	//
	shape, err := bopBase.Shape(columns...)
	if err != nil {
		return nil, err
	}
	//
	log.Debugf("inferred shape %s", shape)
	//
	return bop.FromRecords(shape, coerceStrings(records, columns))
}

// Derive column descriptors from raw records, inferring the kind of each
// field from the values observed for it.  Fields whose values disagree on a
// kind fall back to string.
func inferColumns(records []bop.Record) []bop.Column {
	kinds := make(map[string]bop.Kind)
	//
	for _, record := range records {
		for name, value := range record {
			if value == nil {
				// Record the field, but let other rows decide its kind.
				if _, ok := kinds[name]; !ok {
					kinds[name] = bop.KindString
				}
				//
				continue
			}
			//
			kind := classify(value)
			//
			if seen, ok := kinds[name]; !ok {
				kinds[name] = kind
			} else if seen != kind {
				kinds[name] = bop.KindString
			}
		}
	}
	// Sort field names, so the derived shape is deterministic.
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	//
	sort.Strings(names)
	//
	columns := make([]bop.Column, len(names))
	for i, name := range names {
		columns[i] = bop.NewColumn(name, kinds[name])
	}
	//
	return columns
}

// Classify a single raw value as one of the column kinds.
func classify(value any) bop.Kind {
	switch v := value.(type) {
	case bool:
		return bop.KindBoolean
	case int, int32, int64:
		return bop.KindInteger
	case float64:
		if v == float64(int64(v)) {
			return bop.KindInteger
		}
	case string:
		if _, err := strconv.ParseInt(v, 10, 64); err == nil {
			return bop.KindInteger
		} else if _, err := strconv.ParseBool(v); err == nil {
			return bop.KindBoolean
		}
	}
	//
	return bop.KindString
}

// Rewrite values of fields inferred as string columns into their textual
// form, since fields demoted to string (e.g. by rows disagreeing on a kind)
// may still hold non-string values.
func coerceStrings(records []bop.Record, columns []bop.Column) []bop.Record {
	stringly := make(map[string]bool)
	//
	for _, c := range columns {
		if c.Kind() == bop.KindString {
			stringly[c.Name()] = true
		}
	}
	//
	for _, record := range records {
		for name, value := range record {
			if _, ok := value.(string); !ok && value != nil && stringly[name] {
				record[name] = fmt.Sprintf("%v", value)
			}
		}
	}
	//
	return records
}

// Narrow a bag down to a named subset of its columns.  Requesting a column
// the source does not have leaves the bag unchanged.
func narrowTo(bag *bop.Bag, names []string) *bop.Bag {
	byName := make(map[string]bop.Column)
	for _, c := range bag.Columns() {
		byName[c.Name()] = c
	}
	//
	columns := make([]bop.Column, 0, len(names))
	//
	for _, name := range names {
		name = strings.TrimSpace(name)
		//
		c, ok := byName[name]
		if !ok {
			log.Warnf("source has no column %q", name)
			return bag
		}
		//
		columns = append(columns, c)
	}
	//
	required, err := bopBase.Shape(columns...)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return bop.Narrow(required, bag)
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().String("columns", "", "narrow to a comma-separated subset of columns")
	showCmd.Flags().String("table", "", "database table to read (sqlite sources only)")
}
