/*
Package custody implements multi-signature protected custody accounts.

Every owner address holds at most one custody account. An account is
created with a signature threshold of at least two and starts with a
zero balance. Deposits and withdrawals are only accepted on active
accounts, and every withdrawal must present at least as many
signatures as the account threshold demands.

Business outcomes are reported as a boolean: a rejected operation that
leaves state untouched (duplicate create, inactive account, too large
withdrawal) reports false with an explanatory log, while a broken
precondition (unknown account, too few signatures, threshold below the
minimum) aborts with an error so any partial writes are rolled back by
the surrounding savepoint.

Successful mutations refresh the retention window of the custody
records, so actively used state stays alive while abandoned state may
expire.
*/
package custody
