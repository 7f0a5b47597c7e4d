// Package buffer provides the sample buffer that synthesis writes into and a
// pool for reusing such buffers between utterances.
//
// A [Buffer] is pre-sized to the exact number of samples an utterance needs
// and filled sequentially through a single write cursor. What happens when the
// cursor passes the end of the buffer is decided by its [Policy]: the default
// [PolicyFail] drops the excess samples and reports [ErrOverrun] from [Buffer.Err],
// [PolicyGrow] extends the buffer, and [PolicyTruncate] silently drops samples.
package buffer
