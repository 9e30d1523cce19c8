package Trees

import "github.com/sirupsen/logrus"

// Log is the logger of this package. Removals are logged at debug level.
var Log = logrus.New()
