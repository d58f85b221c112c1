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
	"fmt"

	"github.com/consensys/go-bop/pkg/bop"
)

// Slice is a dataset held entirely in memory.
type Slice []bop.Record

// Records returns the records of this dataset.
func (p Slice) Records() ([]bop.Record, error) {
	return p, nil
}

// Splits is a dataset organised into named splits (e.g. "train" / "test"),
// following the hub-dataset convention of defaulting to the "train" split
// when read without an explicit selection.
type Splits map[string]bop.Dataset

// Split returns the dataset for a given split name.
func (p Splits) Split(name string) (bop.Dataset, error) {
	split, ok := p[name]
	if !ok {
		return nil, fmt.Errorf("dataset has no %q split", name)
	}
	//
	return split, nil
}

// Records reads the default ("train") split.
func (p Splits) Records() ([]bop.Record, error) {
	split, err := p.Split(bop.TrainSplit)
	if err != nil {
		return nil, err
	}
	//
	return split.Records()
}
