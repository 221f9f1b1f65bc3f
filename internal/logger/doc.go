// Package logger wraps zap with a global sugared logger and context helpers.
//
// Components name their logger once with WithName and keep the result;
// call sites log through InfoKV, WarnKV and friends with the context they hold.
package logger
