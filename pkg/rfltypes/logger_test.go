package rfltypes_test

import (
	. "github.com/onsi/gomega"
	"github.com/elastic-sync/rfl/pkg/rfltypes"
	"github.com/sirupsen/logrus"
	"reflect"
	"testing"
)

// Test logger has the same reflect.Kind as a logrus.Logger
func TestNewLogger(t *testing.T) {
	RegisterTestingT(t)
	l1 := rfltypes.NewLogger()
	l2 := logrus.New()
	Expect(reflect.TypeOf(l1).Kind()).To(Equal(reflect.TypeOf(l2).Kind()))
}

// Test null logger has the same reflect.Kind as a logrus.Logger
func TestNewNullLogger(t *testing.T) {
	RegisterTestingT(t)
	l1 := rfltypes.NewNullLogger()
	l2 := logrus.New()
	Expect(reflect.TypeOf(l1).Kind()).To(Equal(reflect.TypeOf(l2).Kind()))
}
