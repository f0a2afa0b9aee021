// Package meta models build service metadata (projects, packages, people and
// repositories) and publishes or deletes it through the /source API.
//
// Entities are immutable values. Each declares a document.Schema that maps
// it to the XML the service expects:
//
//	<project name="home:alice">
//	  <title>Alice's home</title>
//	  <description></description>
//	  <person userid="alice" role="maintainer"></person>
//	  <repository name="openSUSE_Tumbleweed">
//	    <path project="openSUSE:Factory" repository="snapshot"></path>
//	    <arch>x86_64</arch>
//	  </repository>
//	</project>
//
// SendMeta and Delete are the two write operations. They build the route
// and body for a request and hand it to a Requester; transport errors come
// back unchanged. FetchProject and FetchPackage read remote state back into
// entities.
package meta
