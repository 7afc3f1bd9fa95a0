/*
Package msig defines the common interfaces that tie the multisig wallet
engine together: identities (Address, Condition), the Handler and Decorator
contracts used to process messages, transaction and message envelopes, the
key-value storage contract and the result types every operation returns.

We pass context through context.Context between the router, decorators and
handlers. Common values such as block time, chain id and the logger are
stored under private keys with With/Get accessor pairs. Extensions may add
their own keys to enrich the context with package specific data.
*/
package msig
