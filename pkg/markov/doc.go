/*
Package markov builds fixed-order word Markov models in memory and
generates pseudo-random text from them.

A model is trained from a stream of whitespace-delimited words and maps
every observed two-word context to the multiset of words that followed
it. Generation starts from the start-of-text context and repeatedly draws
a uniformly random continuation, sliding the context window forward, until
it draws the end-of-text boundary or reaches the word budget. Output is
available eagerly as a single string or lazily, one word at a time,
through a Walk.
*/
package markov
