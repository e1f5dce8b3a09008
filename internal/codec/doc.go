// Package codec converts records to and from fixed-size binary blocks.
//
// Every record of a table occupies exactly Size() bytes. Integers are 32-bit
// little-endian, prices are IEEE-754 float32, and strings are stored in
// model.MaxField byte buffers: content first, then zero bytes up to the
// capacity. Content is limited to model.MaxField-1 bytes so at least one
// terminating zero always follows it.
//
// Layouts:
//
//	Product  [ID(4)][Name(250)][Description(250)][Category(250)][Unit(250)][UnitPrice(4)]  1008 bytes
//	Teller   [ID(4)][FirstName(250)][MiddleName(250)][LastName(250)]                        754 bytes
//	SaleLine [ID(4)][Product(1008)][Quantity(4)]                                            1016 bytes
//
// There is no header, version tag or checksum. A reader and writer must use
// the same codec.
package codec
