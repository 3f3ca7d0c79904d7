// Package productrfid holds the ProductRfid entity: one physical RFID tag
// bound to a SKU and a serial number.
//
// A ProductRfid is identified by its RfidTag. It may carry a back-reference
// to the box it is packed in. The box owns that membership; the
// back-reference only exists so a tag can be looked up without scanning
// boxes, and it is changed exclusively through box.Box.
package productrfid
