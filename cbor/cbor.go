// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cbor wraps fxamacker/cbor with the options used for signing request payloads
package cbor

import (
	"errors"
	"reflect"

	"github.com/jinzhu/copier"
)

type DecodeStoreCborInterface interface {
	Cbor() []byte
}

// DecodeStoreCbor keeps a copy of the CBOR an object was decoded from
type DecodeStoreCbor struct {
	cborData []byte
}

// Cbor returns the original CBOR for the object
func (d *DecodeStoreCbor) Cbor() []byte {
	return d.cborData
}

// UnmarshalCborGeneric decodes the specified CBOR into the destination object without using the
// destination object's UnmarshalCBOR() function
func (d *DecodeStoreCbor) UnmarshalCborGeneric(
	cborData []byte,
	dest DecodeStoreCborInterface,
) error {
	valueDest := reflect.ValueOf(dest)
	if valueDest.Kind() != reflect.Pointer ||
		valueDest.Elem().Kind() != reflect.Struct {
		return errors.New("destination must be a pointer to a struct")
	}
	// Build a struct type with the same exported fields so that decoding it
	// does not recurse back into the destination's UnmarshalCBOR()
	typeDestElem := valueDest.Elem().Type()
	destTypeFields := []reflect.StructField{}
	for i := range typeDestElem.NumField() {
		tmpField := typeDestElem.Field(i)
		if tmpField.IsExported() && tmpField.Name != "DecodeStoreCbor" {
			destTypeFields = append(destTypeFields, tmpField)
		}
	}
	tmpDest := reflect.New(reflect.StructOf(destTypeFields))
	if _, err := Decode(cborData, tmpDest.Interface()); err != nil {
		return err
	}
	if err := copier.Copy(dest, tmpDest.Interface()); err != nil {
		return err
	}
	// This must happen after the copy above, or it gets wiped out
	d.cborData = make([]byte, len(cborData))
	copy(d.cborData, cborData)
	return nil
}
