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
package bop

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// FromJSON loads a bag of the given shape from a JSON file, which must
// contain a single top-level array of objects.
func FromJSON(shape *ShapedType, filename string) (*Bag, error) {
	records, err := ReadJSONRecords(filename)
	if err != nil {
		return nil, err
	}
	//
	bag, err := New(shape, records...)
	if err != nil {
		return nil, loadError(err, fmt.Sprintf("JSON file %q", filename))
	}
	//
	return bag, nil
}

// FromCSV loads a bag of the given shape from a CSV file with a header row.
// Cell values are parsed according to the kind of their corresponding
// column.
func FromCSV(shape *ShapedType, filename string) (*Bag, error) {
	records, err := ReadCSVRecords(filename)
	if err != nil {
		return nil, err
	}
	//
	bag, err := New(shape, records...)
	if err != nil {
		return nil, loadError(err, fmt.Sprintf("CSV file %q", filename))
	}
	//
	return bag, nil
}

// ReadJSONRecords parses a JSON file into a sequence of raw records.  The
// file must contain a single top-level array of objects; anything else (an
// object, a scalar, malformed JSON) is a load error.
func ReadJSONRecords(filename string) ([]Record, error) {
	source := fmt.Sprintf("JSON file %q", filename)
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, loadError(err, source)
	}
	//
	var payload any
	if err := json.Unmarshal(bytes, &payload); err != nil {
		return nil, loadError(err, source)
	}
	//
	items, ok := payload.([]any)
	if !ok {
		return nil, loadError(fmt.Errorf("expected top-level array of objects, got %T", payload), source)
	}
	//
	records := make([]Record, len(items))
	//
	for i, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			return nil, loadError(fmt.Errorf("expected object at index %d, got %T", i, item), source)
		}
		//
		records[i] = record
	}
	//
	log.Debugf("read %d records from %s", len(records), source)
	//
	return records, nil
}

// ReadCSVRecords parses a CSV file into a sequence of raw records, using the
// first row as field names.  All cell values are strings at this point;
// kind-directed parsing happens during bag construction.
func ReadCSVRecords(filename string) ([]Record, error) {
	source := fmt.Sprintf("CSV file %q", filename)
	//
	file, err := os.Open(filename)
	if err != nil {
		return nil, loadError(err, source)
	}
	//
	defer file.Close()
	//
	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, loadError(err, source)
	}
	//
	if len(rows) == 0 {
		return nil, loadError(fmt.Errorf("missing header row"), source)
	}
	//
	header := rows[0]
	records := make([]Record, len(rows)-1)
	//
	for i, row := range rows[1:] {
		record := make(Record, len(header))
		for j, field := range header {
			record[field] = row[j]
		}
		//
		records[i] = record
	}
	//
	log.Debugf("read %d records from %s", len(records), source)
	//
	return records, nil
}
