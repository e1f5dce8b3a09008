package codec

import "github.com/pankajredekar/pos/internal/model"

const (
	tellerFirst  = 4
	tellerMiddle = tellerFirst + model.MaxField
	tellerLast   = tellerMiddle + model.MaxField

	// TellerSize is the encoded size of a teller record
	TellerSize = tellerLast + model.MaxField
)

// TellerCodec encodes model.Teller records
type TellerCodec struct{}

func (TellerCodec) Size() int { return TellerSize }

func (TellerCodec) Encode(t model.Teller) ([]byte, error) {
	buf := make([]byte, TellerSize)
	putInt32(buf, 0, t.ID)
	if err := putString(buf, tellerFirst, "first name", t.FirstName); err != nil {
		return nil, err
	}
	if err := putString(buf, tellerMiddle, "middle name", t.MiddleName); err != nil {
		return nil, err
	}
	if err := putString(buf, tellerLast, "last name", t.LastName); err != nil {
		return nil, err
	}
	return buf, nil
}

func (TellerCodec) Decode(b []byte) (model.Teller, error) {
	if err := checkSize(b, TellerSize, "teller"); err != nil {
		return model.Teller{}, err
	}
	return model.Teller{
		ID:         getInt32(b, 0),
		FirstName:  getString(b, tellerFirst),
		MiddleName: getString(b, tellerMiddle),
		LastName:   getString(b, tellerLast),
	}, nil
}
