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
package dataset

import (
	"database/sql"
	"fmt"

	"github.com/consensys/go-bop/pkg/bop"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// SQL is a dataset backed by a database query: every row of the result set
// becomes one record, keyed by the result set's column names.
type SQL struct {
	db    *sql.DB
	query string
	args  []any
}

// NewSQL constructs a dataset from an arbitrary query over a given database.
func NewSQL(db *sql.DB, query string, args ...any) *SQL {
	return &SQL{db, query, args}
}

// NewSQLTable constructs a dataset covering an entire database table.
func NewSQLTable(db *sql.DB, table string) *SQL {
	return NewSQL(db, fmt.Sprintf("SELECT * FROM %q", table))
}

// Records runs the query and converts its result set into a sequence of raw
// records.
func (p *SQL) Records() ([]bop.Record, error) {
	rows, err := p.db.Query(p.query, p.args...)
	if err != nil {
		return nil, errors.Wrapf(err, "querying %q", p.query)
	}
	//
	defer rows.Close()
	//
	names, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrapf(err, "querying %q", p.query)
	}
	//
	var records []bop.Record
	//
	for rows.Next() {
		values := make([]any, len(names))
		pointers := make([]any, len(names))
		//
		for i := range values {
			pointers[i] = &values[i]
		}
		//
		if err := rows.Scan(pointers...); err != nil {
			return nil, errors.Wrapf(err, "querying %q", p.query)
		}
		//
		record := make(bop.Record, len(names))
		for i, name := range names {
			record[name] = normalise(values[i])
		}
		//
		records = append(records, record)
	}
	//
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "querying %q", p.query)
	}
	//
	log.Debugf("read %d records via %q", len(records), p.query)
	//
	return records, nil
}

// Drivers surface text columns as raw bytes; everything downstream expects
// strings.
func normalise(value any) any {
	if bytes, ok := value.([]byte); ok {
		return string(bytes)
	}
	//
	return value
}
