package behavior_test

import "errors"

var errTest = errors.New("test error")
