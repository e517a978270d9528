package internal

// Version is the current omniread release version
const Version = "0.1.0"
