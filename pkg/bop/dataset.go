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

// TrainSplit is the split selected by default when loading from a dataset
// which is organised into named splits.
const TrainSplit = "train"

// Dataset is an opaque handle on some external source of records (a database
// table, a hub dataset, etc).  Implementations perform whatever synchronous
// I/O is required when Records is called.
type Dataset interface {
	// Records converts the dataset into a sequence of raw records.
	Records() ([]Record, error)
}

// Splits is a dataset organised into named splits (e.g. "train" / "test"),
// of which one must be chosen before records can be read.
type Splits interface {
	// Split returns the dataset for a given split name, or an error if no
	// such split exists.
	Split(name string) (Dataset, error)
}

// FromDataset loads a bag of the given shape from an external dataset.  If
// the dataset is organised into splits, the "train" split is selected by
// convention.
func FromDataset(shape *ShapedType, source Dataset) (*Bag, error) {
	if splits, ok := source.(Splits); ok {
		split, err := splits.Split(TrainSplit)
		if err != nil {
			return nil, loadError(err, "dataset")
		}
		//
		source = split
	}
	//
	records, err := source.Records()
	if err != nil {
		return nil, loadError(err, "dataset")
	}
	//
	bag, err := New(shape, records...)
	if err != nil {
		return nil, loadError(err, "dataset")
	}
	//
	return bag, nil
}
