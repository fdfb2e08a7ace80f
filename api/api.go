// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package api binds the ODBC driver manager at run time.
//
// Every entry point below is looked up when a DriverManager is opened.
// Entry points the library does not export are replaced by stand-ins
// that fail with ErrNotImplemented.
package api

//go:generate go run mkapi.go -output zapi.go api.go

// sql.h

//sys	SQLAllocConnect(environmentHandle SQLHENV, connectionHandle *SQLHDBC) (ret SQLRETURN)
//sys	SQLAllocEnv(environmentHandle *SQLHENV) (ret SQLRETURN)
//sys	SQLAllocHandle(handleType SQLSMALLINT, inputHandle SQLHANDLE, outputHandle *SQLHANDLE) (ret SQLRETURN)
//sys	SQLAllocStmt(connectionHandle SQLHDBC, statementHandle *SQLHSTMT) (ret SQLRETURN)
//sys	SQLBindCol(statementHandle SQLHSTMT, columnNumber SQLUSMALLINT, targetType SQLSMALLINT, targetValue SQLPOINTER, bufferLength SQLLEN, strLenOrInd *SQLLEN) (ret SQLRETURN)
//sys	SQLBindParam(statementHandle SQLHSTMT, parameterNumber SQLUSMALLINT, valueType SQLSMALLINT, parameterType SQLSMALLINT, lengthPrecision SQLULEN, parameterScale SQLSMALLINT, parameterValue SQLPOINTER, strLenOrInd *SQLLEN) (ret SQLRETURN)
//sys	SQLCancel(statementHandle SQLHSTMT) (ret SQLRETURN)
//sys	SQLCloseCursor(statementHandle SQLHSTMT) (ret SQLRETURN)
//sys	SQLColAttribute(statementHandle SQLHSTMT, columnNumber SQLUSMALLINT, fieldIdentifier SQLUSMALLINT, characterAttribute SQLPOINTER, bufferLength SQLSMALLINT, stringLength *SQLSMALLINT, numericAttribute *SQLLEN) (ret SQLRETURN)
//sys	SQLColumns(statementHandle SQLHSTMT, catalogName *SQLCHAR, nameLength1 SQLSMALLINT, schemaName *SQLCHAR, nameLength2 SQLSMALLINT, tableName *SQLCHAR, nameLength3 SQLSMALLINT, columnName *SQLCHAR, nameLength4 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLConnect(connectionHandle SQLHDBC, serverName *SQLCHAR, nameLength1 SQLSMALLINT, userName *SQLCHAR, nameLength2 SQLSMALLINT, authentication *SQLCHAR, nameLength3 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLCopyDesc(sourceDescHandle SQLHDESC, targetDescHandle SQLHDESC) (ret SQLRETURN)
//sys	SQLDataSources(environmentHandle SQLHENV, direction SQLUSMALLINT, serverName *SQLCHAR, bufferLength1 SQLSMALLINT, nameLength1 *SQLSMALLINT, description *SQLCHAR, bufferLength2 SQLSMALLINT, nameLength2 *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLDescribeCol(statementHandle SQLHSTMT, columnNumber SQLUSMALLINT, columnName *SQLCHAR, bufferLength SQLSMALLINT, nameLength *SQLSMALLINT, dataType *SQLSMALLINT, columnSize *SQLULEN, decimalDigits *SQLSMALLINT, nullable *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLDisconnect(connectionHandle SQLHDBC) (ret SQLRETURN)
//sys	SQLEndTran(handleType SQLSMALLINT, handle SQLHANDLE, completionType SQLSMALLINT) (ret SQLRETURN)
//sys	SQLError(environmentHandle SQLHENV, connectionHandle SQLHDBC, statementHandle SQLHSTMT, sqlState *SQLCHAR, nativeError *SQLINTEGER, messageText *SQLCHAR, bufferLength SQLSMALLINT, textLength *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLExecDirect(statementHandle SQLHSTMT, statementText *SQLCHAR, textLength SQLINTEGER) (ret SQLRETURN)
//sys	SQLExecute(statementHandle SQLHSTMT) (ret SQLRETURN)
//sys	SQLFetch(statementHandle SQLHSTMT) (ret SQLRETURN)
//sys	SQLFetchScroll(statementHandle SQLHSTMT, fetchOrientation SQLSMALLINT, fetchOffset SQLLEN) (ret SQLRETURN)
//sys	SQLFreeConnect(connectionHandle SQLHDBC) (ret SQLRETURN)
//sys	SQLFreeEnv(environmentHandle SQLHENV) (ret SQLRETURN)
//sys	SQLFreeHandle(handleType SQLSMALLINT, handle SQLHANDLE) (ret SQLRETURN)
//sys	SQLFreeStmt(statementHandle SQLHSTMT, option SQLUSMALLINT) (ret SQLRETURN)
//sys	SQLGetConnectAttr(connectionHandle SQLHDBC, attribute SQLINTEGER, value SQLPOINTER, bufferLength SQLINTEGER, stringLength *SQLINTEGER) (ret SQLRETURN)
//sys	SQLGetConnectOption(connectionHandle SQLHDBC, option SQLUSMALLINT, value SQLPOINTER) (ret SQLRETURN)
//sys	SQLGetCursorName(statementHandle SQLHSTMT, cursorName *SQLCHAR, bufferLength SQLSMALLINT, nameLength *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLGetData(statementHandle SQLHSTMT, columnNumber SQLUSMALLINT, targetType SQLSMALLINT, targetValue SQLPOINTER, bufferLength SQLLEN, strLenOrInd *SQLLEN) (ret SQLRETURN)
//sys	SQLGetDescField(descriptorHandle SQLHDESC, recNumber SQLSMALLINT, fieldIdentifier SQLSMALLINT, value SQLPOINTER, bufferLength SQLINTEGER, stringLength *SQLINTEGER) (ret SQLRETURN)
//sys	SQLGetDescRec(descriptorHandle SQLHDESC, recNumber SQLSMALLINT, name *SQLCHAR, bufferLength SQLSMALLINT, stringLength *SQLSMALLINT, typ *SQLSMALLINT, subType *SQLSMALLINT, length *SQLLEN, precision *SQLSMALLINT, scale *SQLSMALLINT, nullable *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLGetDiagField(handleType SQLSMALLINT, handle SQLHANDLE, recNumber SQLSMALLINT, diagIdentifier SQLSMALLINT, diagInfo SQLPOINTER, bufferLength SQLSMALLINT, stringLength *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLGetDiagRec(handleType SQLSMALLINT, handle SQLHANDLE, recNumber SQLSMALLINT, sqlState *SQLCHAR, nativeError *SQLINTEGER, messageText *SQLCHAR, bufferLength SQLSMALLINT, textLength *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLGetEnvAttr(environmentHandle SQLHENV, attribute SQLINTEGER, value SQLPOINTER, bufferLength SQLINTEGER, stringLength *SQLINTEGER) (ret SQLRETURN)
//sys	SQLGetFunctions(connectionHandle SQLHDBC, functionID SQLUSMALLINT, supported *SQLUSMALLINT) (ret SQLRETURN)
//sys	SQLGetInfo(connectionHandle SQLHDBC, infoType SQLUSMALLINT, infoValue SQLPOINTER, bufferLength SQLSMALLINT, stringLength *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLGetStmtAttr(statementHandle SQLHSTMT, attribute SQLINTEGER, value SQLPOINTER, bufferLength SQLINTEGER, stringLength *SQLINTEGER) (ret SQLRETURN)
//sys	SQLGetStmtOption(statementHandle SQLHSTMT, option SQLUSMALLINT, value SQLPOINTER) (ret SQLRETURN)
//sys	SQLGetTypeInfo(statementHandle SQLHSTMT, dataType SQLSMALLINT) (ret SQLRETURN)
//sys	SQLNumResultCols(statementHandle SQLHSTMT, columnCount *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLParamData(statementHandle SQLHSTMT, value *SQLPOINTER) (ret SQLRETURN)
//sys	SQLPrepare(statementHandle SQLHSTMT, statementText *SQLCHAR, textLength SQLINTEGER) (ret SQLRETURN)
//sys	SQLPutData(statementHandle SQLHSTMT, data SQLPOINTER, strLenOrInd SQLLEN) (ret SQLRETURN)
//sys	SQLRowCount(statementHandle SQLHSTMT, rowCount *SQLLEN) (ret SQLRETURN)
//sys	SQLSetConnectAttr(connectionHandle SQLHDBC, attribute SQLINTEGER, value SQLPOINTER, stringLength SQLINTEGER) (ret SQLRETURN)
//sys	SQLSetConnectOption(connectionHandle SQLHDBC, option SQLUSMALLINT, value SQLULEN) (ret SQLRETURN)
//sys	SQLSetCursorName(statementHandle SQLHSTMT, cursorName *SQLCHAR, nameLength SQLSMALLINT) (ret SQLRETURN)
//sys	SQLSetDescField(descriptorHandle SQLHDESC, recNumber SQLSMALLINT, fieldIdentifier SQLSMALLINT, value SQLPOINTER, bufferLength SQLINTEGER) (ret SQLRETURN)
//sys	SQLSetDescRec(descriptorHandle SQLHDESC, recNumber SQLSMALLINT, typ SQLSMALLINT, subType SQLSMALLINT, length SQLLEN, precision SQLSMALLINT, scale SQLSMALLINT, data SQLPOINTER, stringLength *SQLLEN, indicator *SQLLEN) (ret SQLRETURN)
//sys	SQLSetEnvAttr(environmentHandle SQLHENV, attribute SQLINTEGER, value SQLPOINTER, stringLength SQLINTEGER) (ret SQLRETURN)
//sys	SQLSetStmtAttr(statementHandle SQLHSTMT, attribute SQLINTEGER, value SQLPOINTER, stringLength SQLINTEGER) (ret SQLRETURN)
//sys	SQLSetStmtOption(statementHandle SQLHSTMT, option SQLUSMALLINT, value SQLULEN) (ret SQLRETURN)
//sys	SQLSpecialColumns(statementHandle SQLHSTMT, identifierType SQLUSMALLINT, catalogName *SQLCHAR, nameLength1 SQLSMALLINT, schemaName *SQLCHAR, nameLength2 SQLSMALLINT, tableName *SQLCHAR, nameLength3 SQLSMALLINT, scope SQLUSMALLINT, nullable SQLUSMALLINT) (ret SQLRETURN)
//sys	SQLStatistics(statementHandle SQLHSTMT, catalogName *SQLCHAR, nameLength1 SQLSMALLINT, schemaName *SQLCHAR, nameLength2 SQLSMALLINT, tableName *SQLCHAR, nameLength3 SQLSMALLINT, unique SQLUSMALLINT, reserved SQLUSMALLINT) (ret SQLRETURN)
//sys	SQLTables(statementHandle SQLHSTMT, catalogName *SQLCHAR, nameLength1 SQLSMALLINT, schemaName *SQLCHAR, nameLength2 SQLSMALLINT, tableName *SQLCHAR, nameLength3 SQLSMALLINT, tableType *SQLCHAR, nameLength4 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLTransact(environmentHandle SQLHENV, connectionHandle SQLHDBC, completionType SQLUSMALLINT) (ret SQLRETURN)
//sys	SQLSetParam(statementHandle SQLHSTMT, parameterNumber SQLUSMALLINT, valueType SQLSMALLINT, parameterType SQLSMALLINT, lengthPrecision SQLULEN, parameterScale SQLSMALLINT, parameterValue SQLPOINTER, strLenOrInd *SQLLEN) (ret SQLRETURN)

// sqlucode.h, wide character variants

//sys	SQLColAttributeW(statementHandle SQLHSTMT, columnNumber SQLUSMALLINT, fieldIdentifier SQLUSMALLINT, characterAttribute SQLPOINTER, bufferLength SQLSMALLINT, stringLength *SQLSMALLINT, numericAttribute *SQLLEN) (ret SQLRETURN)
//sys	SQLColAttributesW(statementHandle SQLHSTMT, columnNumber SQLUSMALLINT, fieldIdentifier SQLUSMALLINT, characterAttribute SQLPOINTER, bufferLength SQLSMALLINT, stringLength *SQLSMALLINT, numericAttribute *SQLLEN) (ret SQLRETURN)
//sys	SQLConnectW(connectionHandle SQLHDBC, serverName *SQLWCHAR, nameLength1 SQLSMALLINT, userName *SQLWCHAR, nameLength2 SQLSMALLINT, authentication *SQLWCHAR, nameLength3 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLDescribeColW(statementHandle SQLHSTMT, columnNumber SQLUSMALLINT, columnName *SQLWCHAR, bufferLength SQLSMALLINT, nameLength *SQLSMALLINT, dataType *SQLSMALLINT, columnSize *SQLULEN, decimalDigits *SQLSMALLINT, nullable *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLErrorW(environmentHandle SQLHENV, connectionHandle SQLHDBC, statementHandle SQLHSTMT, sqlState *SQLWCHAR, nativeError *SQLINTEGER, messageText *SQLWCHAR, bufferLength SQLSMALLINT, textLength *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLExecDirectW(statementHandle SQLHSTMT, statementText *SQLWCHAR, textLength SQLINTEGER) (ret SQLRETURN)
//sys	SQLGetConnectAttrW(connectionHandle SQLHDBC, attribute SQLINTEGER, value SQLPOINTER, bufferLength SQLINTEGER, stringLength *SQLINTEGER) (ret SQLRETURN)
//sys	SQLGetCursorNameW(statementHandle SQLHSTMT, cursorName *SQLWCHAR, bufferLength SQLSMALLINT, nameLength *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLSetDescFieldW(descriptorHandle SQLHDESC, recNumber SQLSMALLINT, fieldIdentifier SQLSMALLINT, value SQLPOINTER, bufferLength SQLINTEGER) (ret SQLRETURN)
//sys	SQLGetDescFieldW(descriptorHandle SQLHDESC, recNumber SQLSMALLINT, fieldIdentifier SQLSMALLINT, value SQLPOINTER, bufferLength SQLINTEGER, stringLength *SQLINTEGER) (ret SQLRETURN)
//sys	SQLGetDescRecW(descriptorHandle SQLHDESC, recNumber SQLSMALLINT, name *SQLWCHAR, bufferLength SQLSMALLINT, stringLength *SQLSMALLINT, typ *SQLSMALLINT, subType *SQLSMALLINT, length *SQLLEN, precision *SQLSMALLINT, scale *SQLSMALLINT, nullable *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLGetDiagFieldW(handleType SQLSMALLINT, handle SQLHANDLE, recNumber SQLSMALLINT, diagIdentifier SQLSMALLINT, diagInfo SQLPOINTER, bufferLength SQLSMALLINT, stringLength *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLGetDiagRecW(handleType SQLSMALLINT, handle SQLHANDLE, recNumber SQLSMALLINT, sqlState *SQLWCHAR, nativeError *SQLINTEGER, messageText *SQLWCHAR, bufferLength SQLSMALLINT, textLength *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLPrepareW(statementHandle SQLHSTMT, statementText *SQLWCHAR, textLength SQLINTEGER) (ret SQLRETURN)
//sys	SQLSetConnectAttrW(connectionHandle SQLHDBC, attribute SQLINTEGER, value SQLPOINTER, stringLength SQLINTEGER) (ret SQLRETURN)
//sys	SQLSetCursorNameW(statementHandle SQLHSTMT, cursorName *SQLWCHAR, nameLength SQLSMALLINT) (ret SQLRETURN)
//sys	SQLColumnsW(statementHandle SQLHSTMT, catalogName *SQLWCHAR, nameLength1 SQLSMALLINT, schemaName *SQLWCHAR, nameLength2 SQLSMALLINT, tableName *SQLWCHAR, nameLength3 SQLSMALLINT, columnName *SQLWCHAR, nameLength4 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLGetConnectOptionW(connectionHandle SQLHDBC, option SQLUSMALLINT, value SQLPOINTER) (ret SQLRETURN)
//sys	SQLGetInfoW(connectionHandle SQLHDBC, infoType SQLUSMALLINT, infoValue SQLPOINTER, bufferLength SQLSMALLINT, stringLength *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLGetTypeInfoW(statementHandle SQLHSTMT, dataType SQLSMALLINT) (ret SQLRETURN)
//sys	SQLSetConnectOptionW(connectionHandle SQLHDBC, option SQLUSMALLINT, value SQLULEN) (ret SQLRETURN)
//sys	SQLSpecialColumnsW(statementHandle SQLHSTMT, identifierType SQLUSMALLINT, catalogName *SQLWCHAR, nameLength1 SQLSMALLINT, schemaName *SQLWCHAR, nameLength2 SQLSMALLINT, tableName *SQLWCHAR, nameLength3 SQLSMALLINT, scope SQLUSMALLINT, nullable SQLUSMALLINT) (ret SQLRETURN)
//sys	SQLStatisticsW(statementHandle SQLHSTMT, catalogName *SQLWCHAR, nameLength1 SQLSMALLINT, schemaName *SQLWCHAR, nameLength2 SQLSMALLINT, tableName *SQLWCHAR, nameLength3 SQLSMALLINT, unique SQLUSMALLINT, reserved SQLUSMALLINT) (ret SQLRETURN)
//sys	SQLTablesW(statementHandle SQLHSTMT, catalogName *SQLWCHAR, nameLength1 SQLSMALLINT, schemaName *SQLWCHAR, nameLength2 SQLSMALLINT, tableName *SQLWCHAR, nameLength3 SQLSMALLINT, tableType *SQLWCHAR, nameLength4 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLDataSourcesW(environmentHandle SQLHENV, direction SQLUSMALLINT, serverName *SQLWCHAR, bufferLength1 SQLSMALLINT, nameLength1 *SQLSMALLINT, description *SQLWCHAR, bufferLength2 SQLSMALLINT, nameLength2 *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLDriverConnectW(connectionHandle SQLHDBC, windowHandle SQLHWND, inConnectionString *SQLWCHAR, stringLength1 SQLSMALLINT, outConnectionString *SQLWCHAR, bufferLength SQLSMALLINT, stringLength2 *SQLSMALLINT, driverCompletion SQLUSMALLINT) (ret SQLRETURN)
//sys	SQLBrowseConnectW(connectionHandle SQLHDBC, inConnectionString *SQLWCHAR, stringLength1 SQLSMALLINT, outConnectionString *SQLWCHAR, bufferLength SQLSMALLINT, stringLength2 *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLColumnPrivilegesW(statementHandle SQLHSTMT, catalogName *SQLWCHAR, nameLength1 SQLSMALLINT, schemaName *SQLWCHAR, nameLength2 SQLSMALLINT, tableName *SQLWCHAR, nameLength3 SQLSMALLINT, columnName *SQLWCHAR, nameLength4 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLGetStmtAttrW(statementHandle SQLHSTMT, attribute SQLINTEGER, value SQLPOINTER, bufferLength SQLINTEGER, stringLength *SQLINTEGER) (ret SQLRETURN)
//sys	SQLSetStmtAttrW(statementHandle SQLHSTMT, attribute SQLINTEGER, value SQLPOINTER, stringLength SQLINTEGER) (ret SQLRETURN)
//sys	SQLForeignKeysW(statementHandle SQLHSTMT, pkCatalogName *SQLWCHAR, nameLength1 SQLSMALLINT, pkSchemaName *SQLWCHAR, nameLength2 SQLSMALLINT, pkTableName *SQLWCHAR, nameLength3 SQLSMALLINT, fkCatalogName *SQLWCHAR, nameLength4 SQLSMALLINT, fkSchemaName *SQLWCHAR, nameLength5 SQLSMALLINT, fkTableName *SQLWCHAR, nameLength6 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLNativeSqlW(connectionHandle SQLHDBC, inStatementText *SQLWCHAR, textLength1 SQLINTEGER, outStatementText *SQLWCHAR, bufferLength SQLINTEGER, textLength2 *SQLINTEGER) (ret SQLRETURN)
//sys	SQLPrimaryKeysW(statementHandle SQLHSTMT, catalogName *SQLWCHAR, nameLength1 SQLSMALLINT, schemaName *SQLWCHAR, nameLength2 SQLSMALLINT, tableName *SQLWCHAR, nameLength3 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLProcedureColumnsW(statementHandle SQLHSTMT, catalogName *SQLWCHAR, nameLength1 SQLSMALLINT, schemaName *SQLWCHAR, nameLength2 SQLSMALLINT, procName *SQLWCHAR, nameLength3 SQLSMALLINT, columnName *SQLWCHAR, nameLength4 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLProceduresW(statementHandle SQLHSTMT, catalogName *SQLWCHAR, nameLength1 SQLSMALLINT, schemaName *SQLWCHAR, nameLength2 SQLSMALLINT, procName *SQLWCHAR, nameLength3 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLTablePrivilegesW(statementHandle SQLHSTMT, catalogName *SQLWCHAR, nameLength1 SQLSMALLINT, schemaName *SQLWCHAR, nameLength2 SQLSMALLINT, tableName *SQLWCHAR, nameLength3 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLDriversW(environmentHandle SQLHENV, direction SQLUSMALLINT, driverDescription *SQLWCHAR, bufferLength1 SQLSMALLINT, descriptionLength *SQLSMALLINT, driverAttributes *SQLWCHAR, bufferLength2 SQLSMALLINT, attributesLength *SQLSMALLINT) (ret SQLRETURN)

// sqlucode.h, ANSI variants

//sys	SQLColAttributeA(statementHandle SQLHSTMT, columnNumber SQLUSMALLINT, fieldIdentifier SQLUSMALLINT, characterAttribute SQLPOINTER, bufferLength SQLSMALLINT, stringLength *SQLSMALLINT, numericAttribute *SQLLEN) (ret SQLRETURN)
//sys	SQLColAttributesA(statementHandle SQLHSTMT, columnNumber SQLUSMALLINT, fieldIdentifier SQLUSMALLINT, characterAttribute SQLPOINTER, bufferLength SQLSMALLINT, stringLength *SQLSMALLINT, numericAttribute *SQLLEN) (ret SQLRETURN)
//sys	SQLConnectA(connectionHandle SQLHDBC, serverName *SQLCHAR, nameLength1 SQLSMALLINT, userName *SQLCHAR, nameLength2 SQLSMALLINT, authentication *SQLCHAR, nameLength3 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLDescribeColA(statementHandle SQLHSTMT, columnNumber SQLUSMALLINT, columnName *SQLCHAR, bufferLength SQLSMALLINT, nameLength *SQLSMALLINT, dataType *SQLSMALLINT, columnSize *SQLULEN, decimalDigits *SQLSMALLINT, nullable *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLErrorA(environmentHandle SQLHENV, connectionHandle SQLHDBC, statementHandle SQLHSTMT, sqlState *SQLCHAR, nativeError *SQLINTEGER, messageText *SQLCHAR, bufferLength SQLSMALLINT, textLength *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLExecDirectA(statementHandle SQLHSTMT, statementText *SQLCHAR, textLength SQLINTEGER) (ret SQLRETURN)
//sys	SQLGetConnectAttrA(connectionHandle SQLHDBC, attribute SQLINTEGER, value SQLPOINTER, bufferLength SQLINTEGER, stringLength *SQLINTEGER) (ret SQLRETURN)
//sys	SQLGetCursorNameA(statementHandle SQLHSTMT, cursorName *SQLCHAR, bufferLength SQLSMALLINT, nameLength *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLSetDescFieldA(descriptorHandle SQLHDESC, recNumber SQLSMALLINT, fieldIdentifier SQLSMALLINT, value SQLPOINTER, bufferLength SQLINTEGER) (ret SQLRETURN)
//sys	SQLGetDescFieldA(descriptorHandle SQLHDESC, recNumber SQLSMALLINT, fieldIdentifier SQLSMALLINT, value SQLPOINTER, bufferLength SQLINTEGER, stringLength *SQLINTEGER) (ret SQLRETURN)
//sys	SQLGetDescRecA(descriptorHandle SQLHDESC, recNumber SQLSMALLINT, name *SQLCHAR, bufferLength SQLSMALLINT, stringLength *SQLSMALLINT, typ *SQLSMALLINT, subType *SQLSMALLINT, length *SQLLEN, precision *SQLSMALLINT, scale *SQLSMALLINT, nullable *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLGetDiagFieldA(handleType SQLSMALLINT, handle SQLHANDLE, recNumber SQLSMALLINT, diagIdentifier SQLSMALLINT, diagInfo SQLPOINTER, bufferLength SQLSMALLINT, stringLength *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLGetDiagRecA(handleType SQLSMALLINT, handle SQLHANDLE, recNumber SQLSMALLINT, sqlState *SQLCHAR, nativeError *SQLINTEGER, messageText *SQLCHAR, bufferLength SQLSMALLINT, textLength *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLPrepareA(statementHandle SQLHSTMT, statementText *SQLCHAR, textLength SQLINTEGER) (ret SQLRETURN)
//sys	SQLSetConnectAttrA(connectionHandle SQLHDBC, attribute SQLINTEGER, value SQLPOINTER, stringLength SQLINTEGER) (ret SQLRETURN)
//sys	SQLSetCursorNameA(statementHandle SQLHSTMT, cursorName *SQLCHAR, nameLength SQLSMALLINT) (ret SQLRETURN)
//sys	SQLColumnsA(statementHandle SQLHSTMT, catalogName *SQLCHAR, nameLength1 SQLSMALLINT, schemaName *SQLCHAR, nameLength2 SQLSMALLINT, tableName *SQLCHAR, nameLength3 SQLSMALLINT, columnName *SQLCHAR, nameLength4 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLGetConnectOptionA(connectionHandle SQLHDBC, option SQLUSMALLINT, value SQLPOINTER) (ret SQLRETURN)
//sys	SQLGetInfoA(connectionHandle SQLHDBC, infoType SQLUSMALLINT, infoValue SQLPOINTER, bufferLength SQLSMALLINT, stringLength *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLGetTypeInfoA(statementHandle SQLHSTMT, dataType SQLSMALLINT) (ret SQLRETURN)
//sys	SQLSetConnectOptionA(connectionHandle SQLHDBC, option SQLUSMALLINT, value SQLULEN) (ret SQLRETURN)
//sys	SQLSpecialColumnsA(statementHandle SQLHSTMT, identifierType SQLUSMALLINT, catalogName *SQLCHAR, nameLength1 SQLSMALLINT, schemaName *SQLCHAR, nameLength2 SQLSMALLINT, tableName *SQLCHAR, nameLength3 SQLSMALLINT, scope SQLUSMALLINT, nullable SQLUSMALLINT) (ret SQLRETURN)
//sys	SQLStatisticsA(statementHandle SQLHSTMT, catalogName *SQLCHAR, nameLength1 SQLSMALLINT, schemaName *SQLCHAR, nameLength2 SQLSMALLINT, tableName *SQLCHAR, nameLength3 SQLSMALLINT, unique SQLUSMALLINT, reserved SQLUSMALLINT) (ret SQLRETURN)
//sys	SQLTablesA(statementHandle SQLHSTMT, catalogName *SQLCHAR, nameLength1 SQLSMALLINT, schemaName *SQLCHAR, nameLength2 SQLSMALLINT, tableName *SQLCHAR, nameLength3 SQLSMALLINT, tableType *SQLCHAR, nameLength4 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLDataSourcesA(environmentHandle SQLHENV, direction SQLUSMALLINT, serverName *SQLCHAR, bufferLength1 SQLSMALLINT, nameLength1 *SQLSMALLINT, description *SQLCHAR, bufferLength2 SQLSMALLINT, nameLength2 *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLDriverConnectA(connectionHandle SQLHDBC, windowHandle SQLHWND, inConnectionString *SQLCHAR, stringLength1 SQLSMALLINT, outConnectionString *SQLCHAR, bufferLength SQLSMALLINT, stringLength2 *SQLSMALLINT, driverCompletion SQLUSMALLINT) (ret SQLRETURN)
//sys	SQLBrowseConnectA(connectionHandle SQLHDBC, inConnectionString *SQLCHAR, stringLength1 SQLSMALLINT, outConnectionString *SQLCHAR, bufferLength SQLSMALLINT, stringLength2 *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLColumnPrivilegesA(statementHandle SQLHSTMT, catalogName *SQLCHAR, nameLength1 SQLSMALLINT, schemaName *SQLCHAR, nameLength2 SQLSMALLINT, tableName *SQLCHAR, nameLength3 SQLSMALLINT, columnName *SQLCHAR, nameLength4 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLGetStmtAttrA(statementHandle SQLHSTMT, attribute SQLINTEGER, value SQLPOINTER, bufferLength SQLINTEGER, stringLength *SQLINTEGER) (ret SQLRETURN)
//sys	SQLSetStmtAttrA(statementHandle SQLHSTMT, attribute SQLINTEGER, value SQLPOINTER, stringLength SQLINTEGER) (ret SQLRETURN)
//sys	SQLForeignKeysA(statementHandle SQLHSTMT, pkCatalogName *SQLCHAR, nameLength1 SQLSMALLINT, pkSchemaName *SQLCHAR, nameLength2 SQLSMALLINT, pkTableName *SQLCHAR, nameLength3 SQLSMALLINT, fkCatalogName *SQLCHAR, nameLength4 SQLSMALLINT, fkSchemaName *SQLCHAR, nameLength5 SQLSMALLINT, fkTableName *SQLCHAR, nameLength6 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLNativeSqlA(connectionHandle SQLHDBC, inStatementText *SQLCHAR, textLength1 SQLINTEGER, outStatementText *SQLCHAR, bufferLength SQLINTEGER, textLength2 *SQLINTEGER) (ret SQLRETURN)
//sys	SQLPrimaryKeysA(statementHandle SQLHSTMT, catalogName *SQLCHAR, nameLength1 SQLSMALLINT, schemaName *SQLCHAR, nameLength2 SQLSMALLINT, tableName *SQLCHAR, nameLength3 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLProcedureColumnsA(statementHandle SQLHSTMT, catalogName *SQLCHAR, nameLength1 SQLSMALLINT, schemaName *SQLCHAR, nameLength2 SQLSMALLINT, procName *SQLCHAR, nameLength3 SQLSMALLINT, columnName *SQLCHAR, nameLength4 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLProceduresA(statementHandle SQLHSTMT, catalogName *SQLCHAR, nameLength1 SQLSMALLINT, schemaName *SQLCHAR, nameLength2 SQLSMALLINT, procName *SQLCHAR, nameLength3 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLTablePrivilegesA(statementHandle SQLHSTMT, catalogName *SQLCHAR, nameLength1 SQLSMALLINT, schemaName *SQLCHAR, nameLength2 SQLSMALLINT, tableName *SQLCHAR, nameLength3 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLDriversA(environmentHandle SQLHENV, direction SQLUSMALLINT, driverDescription *SQLCHAR, bufferLength1 SQLSMALLINT, descriptionLength *SQLSMALLINT, driverAttributes *SQLCHAR, bufferLength2 SQLSMALLINT, attributesLength *SQLSMALLINT) (ret SQLRETURN)

// sqlext.h

//sys	SQLDriverConnect(connectionHandle SQLHDBC, windowHandle SQLHWND, inConnectionString *SQLCHAR, stringLength1 SQLSMALLINT, outConnectionString *SQLCHAR, bufferLength SQLSMALLINT, stringLength2 *SQLSMALLINT, driverCompletion SQLUSMALLINT) (ret SQLRETURN)
//sys	SQLBrowseConnect(connectionHandle SQLHDBC, inConnectionString *SQLCHAR, stringLength1 SQLSMALLINT, outConnectionString *SQLCHAR, bufferLength SQLSMALLINT, stringLength2 *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLBulkOperations(statementHandle SQLHSTMT, operation SQLSMALLINT) (ret SQLRETURN)
//sys	SQLColAttributes(statementHandle SQLHSTMT, columnNumber SQLUSMALLINT, fieldIdentifier SQLUSMALLINT, characterAttribute SQLPOINTER, bufferLength SQLSMALLINT, stringLength *SQLSMALLINT, numericAttribute *SQLLEN) (ret SQLRETURN)
//sys	SQLColumnPrivileges(statementHandle SQLHSTMT, catalogName *SQLCHAR, nameLength1 SQLSMALLINT, schemaName *SQLCHAR, nameLength2 SQLSMALLINT, tableName *SQLCHAR, nameLength3 SQLSMALLINT, columnName *SQLCHAR, nameLength4 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLDescribeParam(statementHandle SQLHSTMT, parameterNumber SQLUSMALLINT, dataType *SQLSMALLINT, parameterSize *SQLULEN, decimalDigits *SQLSMALLINT, nullable *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLExtendedFetch(statementHandle SQLHSTMT, fetchOrientation SQLUSMALLINT, fetchOffset SQLLEN, rowCount *SQLULEN, rowStatus *SQLUSMALLINT) (ret SQLRETURN)
//sys	SQLForeignKeys(statementHandle SQLHSTMT, pkCatalogName *SQLCHAR, nameLength1 SQLSMALLINT, pkSchemaName *SQLCHAR, nameLength2 SQLSMALLINT, pkTableName *SQLCHAR, nameLength3 SQLSMALLINT, fkCatalogName *SQLCHAR, nameLength4 SQLSMALLINT, fkSchemaName *SQLCHAR, nameLength5 SQLSMALLINT, fkTableName *SQLCHAR, nameLength6 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLMoreResults(statementHandle SQLHSTMT) (ret SQLRETURN)
//sys	SQLNativeSql(connectionHandle SQLHDBC, inStatementText *SQLCHAR, textLength1 SQLINTEGER, outStatementText *SQLCHAR, bufferLength SQLINTEGER, textLength2 *SQLINTEGER) (ret SQLRETURN)
//sys	SQLNumParams(statementHandle SQLHSTMT, parameterCount *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLParamOptions(statementHandle SQLHSTMT, crow SQLULEN, rowNumber *SQLULEN) (ret SQLRETURN)
//sys	SQLPrimaryKeys(statementHandle SQLHSTMT, catalogName *SQLCHAR, nameLength1 SQLSMALLINT, schemaName *SQLCHAR, nameLength2 SQLSMALLINT, tableName *SQLCHAR, nameLength3 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLProcedureColumns(statementHandle SQLHSTMT, catalogName *SQLCHAR, nameLength1 SQLSMALLINT, schemaName *SQLCHAR, nameLength2 SQLSMALLINT, procName *SQLCHAR, nameLength3 SQLSMALLINT, columnName *SQLCHAR, nameLength4 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLProcedures(statementHandle SQLHSTMT, catalogName *SQLCHAR, nameLength1 SQLSMALLINT, schemaName *SQLCHAR, nameLength2 SQLSMALLINT, procName *SQLCHAR, nameLength3 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLSetPos(statementHandle SQLHSTMT, rowNumber SQLSETPOSIROW, operation SQLUSMALLINT, lockType SQLUSMALLINT) (ret SQLRETURN)
//sys	SQLTablePrivileges(statementHandle SQLHSTMT, catalogName *SQLCHAR, nameLength1 SQLSMALLINT, schemaName *SQLCHAR, nameLength2 SQLSMALLINT, tableName *SQLCHAR, nameLength3 SQLSMALLINT) (ret SQLRETURN)
//sys	SQLDrivers(environmentHandle SQLHENV, direction SQLUSMALLINT, driverDescription *SQLCHAR, bufferLength1 SQLSMALLINT, descriptionLength *SQLSMALLINT, driverAttributes *SQLCHAR, bufferLength2 SQLSMALLINT, attributesLength *SQLSMALLINT) (ret SQLRETURN)
//sys	SQLBindParameter(statementHandle SQLHSTMT, parameterNumber SQLUSMALLINT, inputOutputType SQLSMALLINT, valueType SQLSMALLINT, parameterType SQLSMALLINT, columnSize SQLULEN, decimalDigits SQLSMALLINT, parameterValue SQLPOINTER, bufferLength SQLLEN, strLenOrInd *SQLLEN) (ret SQLRETURN)
//sys	SQLSetScrollOptions(statementHandle SQLHSTMT, concurrency SQLUSMALLINT, keysetSize SQLLEN, rowsetSize SQLUSMALLINT) (ret SQLRETURN)
//sys	SQLAllocHandleStd(handleType SQLSMALLINT, inputHandle SQLHANDLE, outputHandle *SQLHANDLE) (ret SQLRETURN)
